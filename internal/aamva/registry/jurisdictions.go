package registry

// iinTable maps issuer identification numbers to US jurisdictions.
var iinTable = map[string]Jurisdiction{
	"636000": {Abbrev: "VA", Name: "Virginia"},
	"636001": {Abbrev: "NY", Name: "New York"},
	"636002": {Abbrev: "MA", Name: "Massachusetts"},
	"636003": {Abbrev: "MD", Name: "Maryland"},
	"636004": {Abbrev: "NC", Name: "North Carolina"},
	"636005": {Abbrev: "SC", Name: "South Carolina"},
	"636006": {Abbrev: "CT", Name: "Connecticut"},
	"636007": {Abbrev: "LA", Name: "Louisiana"},
	"636008": {Abbrev: "MT", Name: "Montana"},
	"636009": {Abbrev: "NM", Name: "New Mexico"},
	"636010": {Abbrev: "FL", Name: "Florida"},
	"636011": {Abbrev: "DE", Name: "Delaware"},
	"636014": {Abbrev: "CA", Name: "California"},
	"636015": {Abbrev: "TX", Name: "Texas"},
	"636018": {Abbrev: "IA", Name: "Iowa"},
	"636020": {Abbrev: "CO", Name: "Colorado"},
	"636021": {Abbrev: "AR", Name: "Arkansas"},
	"636022": {Abbrev: "KS", Name: "Kansas"},
	"636023": {Abbrev: "OH", Name: "Ohio"},
	"636024": {Abbrev: "VT", Name: "Vermont"},
	"636025": {Abbrev: "PA", Name: "Pennsylvania"},
	"636026": {Abbrev: "AZ", Name: "Arizona"},
	"636029": {Abbrev: "OR", Name: "Oregon"},
	"636030": {Abbrev: "MO", Name: "Missouri"},
	"636031": {Abbrev: "WI", Name: "Wisconsin"},
	"636032": {Abbrev: "MI", Name: "Michigan"},
	"636033": {Abbrev: "AL", Name: "Alabama"},
	"636034": {Abbrev: "ND", Name: "North Dakota"},
	"636035": {Abbrev: "IL", Name: "Illinois"},
	"636036": {Abbrev: "NJ", Name: "New Jersey"},
	"636037": {Abbrev: "IN", Name: "Indiana"},
	"636038": {Abbrev: "MN", Name: "Minnesota"},
	"636039": {Abbrev: "NH", Name: "New Hampshire"},
	"636040": {Abbrev: "UT", Name: "Utah"},
	"636041": {Abbrev: "ME", Name: "Maine"},
	"636042": {Abbrev: "SD", Name: "South Dakota"},
	"636043": {Abbrev: "DC", Name: "District of Columbia"},
	"636045": {Abbrev: "WA", Name: "Washington"},
	"636046": {Abbrev: "KY", Name: "Kentucky"},
	"636047": {Abbrev: "HI", Name: "Hawaii"},
	"636049": {Abbrev: "NV", Name: "Nevada"},
	"636050": {Abbrev: "ID", Name: "Idaho"},
	"636051": {Abbrev: "MS", Name: "Mississippi"},
	"636052": {Abbrev: "RI", Name: "Rhode Island"},
	"636053": {Abbrev: "TN", Name: "Tennessee"},
	"636054": {Abbrev: "NE", Name: "Nebraska"},
	"636055": {Abbrev: "GA", Name: "Georgia"},
	"636058": {Abbrev: "OK", Name: "Oklahoma"},
	"636059": {Abbrev: "AK", Name: "Alaska"},
	"636060": {Abbrev: "WY", Name: "Wyoming"},
	"636061": {Abbrev: "WV", Name: "West Virginia"},
}
