package web

import (
	"github.com/dom/power-league-website/internal/domain"
	"github.com/dom/power-league-website/internal/static"
)

const unavailableMessage = "Tournament information is currently unavailable. Please check back later."

type NavLink struct {
	Label string
	URL   string
}

// Layout is shared by every page.
type Layout struct {
	Title         string
	Subtitle      string
	SiteName      string
	NavLinks      []NavLink
	Registrations []NavLink
	SocialLinks   []static.Link
	Copyright     string
}

type HomeView struct {
	Layout
	Announcement string
	Sliders      []string
	Cards        []NavLink
	Seasons      []SeasonView
	Unavailable  string
	Tournament   static.Tournament
	Contact      static.ContactInfo
	Logos        []NavLink
	FacebookPage string
}

type SeasonView struct {
	Title           string
	DateRange       string
	Location        string
	EntryFee        string
	EntryDeadline   string
	RegistrationURL string
	Rules           string
	AgeGroups       []domain.AgeGroupEntry
}

type LocationsView struct {
	Layout
	Venues []VenueView
}

type VenueView struct {
	ID              string
	Name            string
	AddressLine1    string
	AddressLine2    string
	MapURL          string
	Seating         string
	HasSeating      bool
	HasConcessions  bool
	ConcessionsText string
	PaymentMethods  []PaymentView
}

type PaymentView struct {
	Tag   string
	Label string
	Icon  string
}

type InformationView struct {
	Layout
	Tabs    []Tab
	Section static.Section
	Winners []domain.HistoricalWinner
}

type Tab struct {
	ID     string
	Label  string
	URL    string
	Active bool
}

func newLayout(title, subtitle string, seasons []*domain.LeagueSeason) Layout {
	registrations := make([]NavLink, 0, len(seasons))
	for _, s := range seasons {
		if s.RegistrationURL == "" {
			continue
		}
		registrations = append(registrations, NavLink{Label: s.Title, URL: s.RegistrationURL})
	}

	return Layout{
		Title:    title,
		Subtitle: subtitle,
		SiteName: static.SiteName,
		NavLinks: []NavLink{
			{Label: "Home", URL: "/"},
			{Label: "League Info", URL: "/information"},
			{Label: "Locations", URL: "/locations"},
		},
		Registrations: registrations,
		SocialLinks:   static.SocialLinks,
		Copyright:     static.CopyrightOwner,
	}
}

func buildHomeView(seasons []*domain.LeagueSeason, announcement *domain.Announcement) HomeView {
	view := HomeView{
		Layout:       newLayout(static.SiteName, static.SiteRegion, seasons),
		Sliders:      SliderImages,
		Tournament:   static.RegionalTournament,
		Contact:      static.Contact,
		FacebookPage: static.FacebookPage,
		Logos: []NavLink{
			{Label: "AAU Logo", URL: AAULogo},
			{Label: "AAU Volleyball Logo", URL: AAUVolleyballLogo},
		},
	}
	if announcement != nil {
		view.Announcement = announcement.Message
	}

	if len(seasons) == 0 {
		view.Subtitle = "Loading tournament information..."
		view.Unavailable = unavailableMessage
		return view
	}

	view.Cards = append(view.Cards, NavLink{Label: "Schedule", URL: scheduleURL(seasons[0])})
	if seasons[0].HotelInfoURL != "" {
		view.Cards = append(view.Cards, NavLink{Label: "Hotel Information", URL: seasons[0].HotelInfoURL})
	}
	view.Cards = append(view.Cards,
		NavLink{Label: "Information/Rules", URL: "/information"},
		NavLink{Label: "Locations", URL: "/locations"},
	)

	view.Seasons = make([]SeasonView, len(seasons))
	for i, s := range seasons {
		view.Seasons[i] = buildSeasonView(s)
	}
	return view
}

func scheduleURL(s *domain.LeagueSeason) string {
	if s.ScheduleURL != "" {
		return s.ScheduleURL
	}
	return "/information#schedule"
}

func buildSeasonView(s *domain.LeagueSeason) SeasonView {
	location := s.Location
	if location == "" {
		location = static.DefaultVenue
	}

	view := SeasonView{
		Title:           s.Title,
		DateRange:       formatDateRange(s.StartDate, s.EndDate),
		Location:        location,
		EntryFee:        formatFee(s.EntryFee),
		RegistrationURL: s.RegistrationURL,
		Rules:           s.Rules,
		AgeGroups:       s.AgeGroups,
	}
	if s.EntryDeadline != nil {
		view.EntryDeadline = formatDate(s.EntryDeadline)
	}
	return view
}

func buildLocationsView(seasons []*domain.LeagueSeason, venues []*domain.VenueLocation) LocationsView {
	view := LocationsView{
		Layout: newLayout("Locations", "Playing venues, addresses, and seating info", seasons),
		Venues: make([]VenueView, len(venues)),
	}

	for i, v := range venues {
		vv := VenueView{
			ID:              v.ID,
			Name:            v.Name,
			AddressLine1:    v.AddressLine1,
			AddressLine2:    v.AddressLine2,
			MapURL:          v.MapURL(),
			Seating:         "Information not available",
			HasConcessions:  v.HasConcessions(),
			ConcessionsText: "No concessions available onsite",
		}
		if v.Seating != nil && *v.Seating != "" {
			vv.Seating = *v.Seating
			vv.HasSeating = true
		}
		if vv.HasConcessions {
			vv.ConcessionsText = "Concessions available"
		}
		for _, m := range v.PaymentMethods {
			vv.PaymentMethods = append(vv.PaymentMethods, PaymentView{
				Tag:   string(m),
				Label: m.Label(),
				Icon:  PaymentIcon(m),
			})
		}
		view.Venues[i] = vv
	}
	return view
}

func buildInformationView(seasons []*domain.LeagueSeason, sectionID string) InformationView {
	section := static.FindSection(sectionID)

	view := InformationView{
		Layout:  newLayout("Rules and Info", "League info, rules, and policies", seasons),
		Section: section,
	}
	for _, s := range static.Information() {
		view.Tabs = append(view.Tabs, Tab{
			ID:     s.ID,
			Label:  s.Label,
			URL:    "/information?section=" + s.ID,
			Active: s.ID == section.ID,
		})
	}
	if section.ID == static.SectionPreviousWinners {
		view.Winners = static.PreviousWinners()
	}
	return view
}
