package registry

// Truncation indicator values shared by the three name-truncation
// elements: T truncated, N not truncated, U unknown.
var truncationValues = []string{"T", "N", "U"}

var (
	eyeColors  = []string{"BLK", "BLU", "BRO", "GRY", "GRN", "HAZ", "MAR", "PNK", "DIC", "UNK"}
	hairColors = []string{"BAL", "BLK", "BLN", "BRO", "GRY", "RED", "SDY", "WHI", "UNK"}
)

// standardDefinitions is the card-design-standard data-element catalog.
// Length bounds follow the published element sizes; variable-length
// elements carry their maximum.
var standardDefinitions = []Definition{
	// Identity.
	{Code: "DCS", Name: "Customer Family Name", Kind: KindText, MinLen: 1, MaxLen: 40, Category: CategoryIdentity},
	{Code: "DAC", Name: "Customer First Name", Kind: KindText, MinLen: 1, MaxLen: 40, Category: CategoryIdentity},
	{Code: "DAD", Name: "Customer Middle Name", Kind: KindText, MinLen: 0, MaxLen: 40, Category: CategoryIdentity},
	{Code: "DCU", Name: "Name Suffix", Kind: KindText, MinLen: 0, MaxLen: 5, Category: CategoryIdentity},
	{Code: "DAQ", Name: "Customer ID Number", Kind: KindText, MinLen: 1, MaxLen: 25, Category: CategoryIdentity},
	{Code: "DCI", Name: "Place of Birth", Kind: KindText, MinLen: 0, MaxLen: 33, Category: CategoryIdentity},
	{Code: "DBN", Name: "Alias Family Name", Kind: KindText, MinLen: 0, MaxLen: 10, Category: CategoryIdentity},
	{Code: "DBG", Name: "Alias Given Name", Kind: KindText, MinLen: 0, MaxLen: 15, Category: CategoryIdentity},
	{Code: "DBS", Name: "Alias Suffix Name", Kind: KindText, MinLen: 0, MaxLen: 5, Category: CategoryIdentity},
	{Code: "DDE", Name: "Family Name Truncation", Kind: KindEnum, MinLen: 1, MaxLen: 1, Enum: truncationValues, Category: CategoryIdentity},
	{Code: "DDF", Name: "First Name Truncation", Kind: KindEnum, MinLen: 1, MaxLen: 1, Enum: truncationValues, Category: CategoryIdentity},
	{Code: "DDG", Name: "Middle Name Truncation", Kind: KindEnum, MinLen: 1, MaxLen: 1, Enum: truncationValues, Category: CategoryIdentity},

	// Physical description.
	{Code: "DBC", Name: "Physical Description - Sex", Kind: KindEnum, MinLen: 1, MaxLen: 1, Enum: []string{"1", "2", "9"}, Category: CategoryPhysical},
	{Code: "DAY", Name: "Physical Description - Eye Color", Kind: KindEnum, MinLen: 3, MaxLen: 3, Enum: eyeColors, Category: CategoryPhysical},
	{Code: "DAZ", Name: "Hair Color", Kind: KindEnum, MinLen: 3, MaxLen: 3, Enum: hairColors, Category: CategoryPhysical},
	{Code: "DAU", Name: "Physical Description - Height", Kind: KindText, MinLen: 6, MaxLen: 6, Category: CategoryPhysical},
	{Code: "DAW", Name: "Weight (Pounds)", Kind: KindNumeric, MinLen: 2, MaxLen: 3, Category: CategoryPhysical},
	{Code: "DAX", Name: "Weight (Kilograms)", Kind: KindNumeric, MinLen: 2, MaxLen: 3, Category: CategoryPhysical},
	{Code: "DCE", Name: "Physical Description - Weight Range", Kind: KindNumeric, MinLen: 1, MaxLen: 1, Category: CategoryPhysical},
	{Code: "DCL", Name: "Race / Ethnicity", Kind: KindText, MinLen: 0, MaxLen: 3, Category: CategoryPhysical},

	// Address.
	{Code: "DAG", Name: "Address - Street 1", Kind: KindText, MinLen: 1, MaxLen: 35, Category: CategoryAddress},
	{Code: "DAH", Name: "Address - Street 2", Kind: KindText, MinLen: 0, MaxLen: 35, Category: CategoryAddress},
	{Code: "DAI", Name: "Address - City", Kind: KindText, MinLen: 1, MaxLen: 20, Category: CategoryAddress},
	{Code: "DAJ", Name: "Address - Jurisdiction Code", Kind: KindText, MinLen: 2, MaxLen: 2, Category: CategoryAddress},
	{Code: "DAK", Name: "Address - Postal Code", Kind: KindText, MinLen: 5, MaxLen: 11, Category: CategoryAddress},

	// Dates.
	{Code: "DBB", Name: "Date of Birth", Kind: KindDate, MinLen: 8, MaxLen: 8, Category: CategoryDates},
	{Code: "DBD", Name: "Document Issue Date", Kind: KindDate, MinLen: 8, MaxLen: 8, Category: CategoryDates},
	{Code: "DBA", Name: "Document Expiration Date", Kind: KindDate, MinLen: 8, MaxLen: 8, Category: CategoryDates},
	{Code: "DDB", Name: "Card Revision Date", Kind: KindDate, MinLen: 8, MaxLen: 8, Category: CategoryDates},
	{Code: "DDC", Name: "HAZMAT Endorsement Expiration Date", Kind: KindDate, MinLen: 8, MaxLen: 8, Category: CategoryDates},
	{Code: "DDH", Name: "Under 18 Until", Kind: KindDate, MinLen: 8, MaxLen: 8, Category: CategoryDates},
	{Code: "DDI", Name: "Under 19 Until", Kind: KindDate, MinLen: 8, MaxLen: 8, Category: CategoryDates},
	{Code: "DDJ", Name: "Under 21 Until", Kind: KindDate, MinLen: 8, MaxLen: 8, Category: CategoryDates},

	// Compliance and document administration.
	{Code: "DCA", Name: "Jurisdiction-specific Vehicle Class", Kind: KindText, MinLen: 1, MaxLen: 6, Category: CategoryCompliance},
	{Code: "DCB", Name: "Jurisdiction-specific Restriction Codes", Kind: KindText, MinLen: 0, MaxLen: 12, Category: CategoryCompliance},
	{Code: "DCD", Name: "Jurisdiction-specific Endorsement Codes", Kind: KindText, MinLen: 0, MaxLen: 5, Category: CategoryCompliance},
	{Code: "DCF", Name: "Document Discriminator", Kind: KindText, MinLen: 1, MaxLen: 25, Category: CategoryCompliance},
	{Code: "DCG", Name: "Country Identification", Kind: KindEnum, MinLen: 3, MaxLen: 3, Enum: []string{"USA", "CAN"}, Category: CategoryCompliance},
	{Code: "DCJ", Name: "Audit Information", Kind: KindText, MinLen: 0, MaxLen: 25, Category: CategoryCompliance},
	{Code: "DCK", Name: "Inventory Control Number", Kind: KindText, MinLen: 0, MaxLen: 25, Category: CategoryCompliance},
	{Code: "DDA", Name: "Compliance Type", Kind: KindEnum, MinLen: 1, MaxLen: 1, Enum: []string{"F", "N"}, Category: CategoryCompliance},
	{Code: "DDD", Name: "Limited Duration Document Indicator", Kind: KindEnum, MinLen: 1, MaxLen: 1, Enum: []string{"1"}, Category: CategoryCompliance},
	{Code: "DDK", Name: "Organ Donor Indicator", Kind: KindEnum, MinLen: 1, MaxLen: 1, Enum: []string{"1"}, Category: CategoryCompliance},
	{Code: "DDL", Name: "Veteran Indicator", Kind: KindEnum, MinLen: 1, MaxLen: 1, Enum: []string{"1"}, Category: CategoryCompliance},
}

// mandatoryDL is the ordered mandatory element set for a DL subfile.
var mandatoryDL = []string{
	"DCA", "DCB", "DCD", "DBA", "DCS", "DAC", "DAD", "DBD", "DBB", "DBC",
	"DAY", "DAU", "DAG", "DAI", "DAJ", "DAK", "DAQ", "DCF", "DCG",
	"DDE", "DDF", "DDG",
}

// mandatoryID drops the driving-privilege elements (class, restrictions,
// endorsements) that an identification card does not carry.
var mandatoryID = []string{
	"DBA", "DCS", "DAC", "DAD", "DBD", "DBB", "DBC",
	"DAY", "DAU", "DAG", "DAI", "DAJ", "DAK", "DAQ", "DCF", "DCG",
	"DDE", "DDF", "DDG",
}
