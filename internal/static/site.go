package static

type Link struct {
	Label string
	URL   string
}

type ContactInfo struct {
	Email   string
	Phone   string
	Contact string
}

// FeeTier is one row of the regional tournament fee table.
type FeeTier struct {
	Ages string
	Cost string
}

type Tournament struct {
	Name                string
	Year                string
	Dates               string
	Location            string
	HostedBy            string
	AgeGroups           string
	EntryFees           []FeeTier
	EntryDeadline       string
	RegistrationURL     string
	RegistrationDisplay string
	Rules               string
	FeesPayableTo       string
}

const (
	SiteName       = "Lake Michigan Power Leagues"
	SiteRegion     = "West Michigan & NW Indiana"
	DefaultVenue   = "Grand Rapids, MI"
	CopyrightOwner = "Lake Michigan Power Leagues"
	FacebookPage   = "https://www.facebook.com/MJVBA-Power-Leagues-1589426191291638/"
)

var Contact = ContactInfo{
	Email:   "admin@lkmichpl.org",
	Phone:   "(616) 259-5306",
	Contact: "Adam Rykse",
}

var SocialLinks = []Link{
	{Label: "Twitter", URL: "https://twitter.com/isovolleyball"},
	{Label: "Facebook", URL: "https://www.facebook.com/Inside-Out-Volleyball-135756269807662/"},
	{Label: "Instagram", URL: "https://www.instagram.com/isovolleyball/"},
}

var RegionalTournament = Tournament{
	Name:      "Lakeshore Volleyfest AAU Super Regional",
	Year:      "2026",
	Dates:     "April 25 & 26, 2026",
	Location:  "Grand Rapids, MI",
	HostedBy:  "Inside Out Volleyball Club",
	AgeGroups: "Girls 11-18",
	EntryFees: []FeeTier{
		{Ages: "13-18's", Cost: "$550.00"},
		{Ages: "11-12's", Cost: "$480.00"},
	},
	EntryDeadline:       "April 6, 2026 (POSTMARK)",
	RegistrationURL:     "https://advancedeventsystems.com/41019",
	RegistrationDisplay: "www.advancedeventsystems.com",
	Rules:               "Tournament will follow current AAU Rules",
	FeesPayableTo:       "Inside Out Volleyball",
}
