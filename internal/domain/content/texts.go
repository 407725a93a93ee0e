package content

// Texts es el árbol de textos localizados (texts.json). Cada sección es
// opcional: si falta, el renderer omite ese bloque.
type Texts struct {
	Nav           *Nav           `json:"nav"`
	Footer        *Footer        `json:"footer"`
	Accessibility *Accessibility `json:"accessibility"`
	Hero          *Hero          `json:"hero"`
	Events        *EventTexts    `json:"events"`
	EventsPage    *EventsPage    `json:"eventsPage"`
	EventDetail   *EventDetail   `json:"eventDetail"`
	Community     *Community     `json:"community"`
	Partnership   *Partnership   `json:"partnership"`
}

type Link struct {
	Href  string `json:"href" validate:"required"`
	Label string `json:"label"`
}

type Nav struct {
	Links []Link `json:"links" validate:"dive"`
}

type LinkSection struct {
	Heading string `json:"heading"`
	Links   []Link `json:"links" validate:"dive"`
}

type ContactSection struct {
	Heading string `json:"heading"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

type FooterSections struct {
	Navigation LinkSection    `json:"navigation"`
	Contact    ContactSection `json:"contact"`
	Social     LinkSection    `json:"social"`
}

type FooterOrganizer struct {
	Label string `json:"label"`
	Href  string `json:"href"`
	Name  string `json:"name"`
}

type Footer struct {
	Description string          `json:"description"`
	Sections    FooterSections  `json:"sections"`
	Copyright   string          `json:"copyright"`
	Organizer   FooterOrganizer `json:"organizer"`
}

type Accessibility struct {
	MenuToggle string `json:"menuToggle"`
	CloseMenu  string `json:"closeMenu"`
}

// Button es un CTA. Style: filled | outline | secondary | (link).
type Button struct {
	Href     string `json:"href" validate:"required"`
	Label    string `json:"label"`
	Style    string `json:"style"`
	External bool   `json:"external"`
}

type Stat struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Color string `json:"color"`
}

type Claim struct {
	Line1 string `json:"line1"`
	Line2 string `json:"line2"`
}

type Hero struct {
	Claim         Claim    `json:"claim"`
	Intro         []string `json:"intro"`
	CTA           []Button `json:"cta" validate:"dive"`
	Stats         []Stat   `json:"stats"`
	PartnersLabel string   `json:"partnersLabel"`
}

type EventButtons struct {
	ShowRecap string `json:"showRecap"`
	SoldOut   string `json:"soldOut"`
	LearnMore string `json:"learnMore"`
	BuyTicket string `json:"buyTicket"`
}

type InfoLabels struct {
	Date      string `json:"date"`
	Time      string `json:"time"`
	Location  string `json:"location"`
	Price     string `json:"price"`
	Attendees string `json:"attendees"`
}

type EventTexts struct {
	Heading       string            `json:"heading"`
	Subheading    string            `json:"subheading"`
	ViewAllButton string            `json:"viewAllButton"`
	StatusLabels  map[string]string `json:"statusLabels"`
	Buttons       EventButtons      `json:"buttons"`
	InfoLabels    InfoLabels        `json:"infoLabels"`
}

// StatusLabel devuelve la etiqueta o el status crudo.
func (t *EventTexts) StatusLabel(status string) string {
	if t != nil {
		if l, ok := t.StatusLabels[status]; ok {
			return l
		}
	}
	return status
}

type EventsPage struct {
	Subtitle        string `json:"subtitle"`
	UpcomingHeading string `json:"upcomingHeading"`
	PastHeading     string `json:"pastHeading"`
}

type EventDetail struct {
	NotFoundTitle string `json:"notFoundTitle"`
	NotFoundText  string `json:"notFoundText"`
	BackToList    string `json:"backToList"`
	GalleryTitle  string `json:"galleryTitle"`
	RecapTitle    string `json:"recapTitle"`
	VideoTitle    string `json:"videoTitle"`
	AboutTitle    string `json:"aboutTitle"`
}

type Community struct {
	Heading           string   `json:"heading"`
	Paragraphs        []string `json:"paragraphs"`
	OrganizersHeading string   `json:"organizersHeading"`
}

type Partnership struct {
	Heading    string   `json:"heading"`
	Paragraphs []string `json:"paragraphs"`
	Benefits   []string `json:"benefits"`
	CTA        []Button `json:"cta" validate:"dive"`
}

// Organizer viene de organizers.json.
type Organizer struct {
	Name     string `json:"name" validate:"required"`
	Image    string `json:"image"`
	Bio      string `json:"bio"`
	LinkedIn string `json:"linkedin"`
}

// Partner viene de partners.json.
type Partner struct {
	Name string `json:"name" validate:"required"`
	Logo string `json:"logo"`
	URL  string `json:"url"`
}
