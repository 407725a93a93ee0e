package content

// SiteName va en el <title> y en el logo.
const SiteName = "AI nadšenci"

// Textos por defecto cuando texts.json no trae la clave.
const (
	defaultUpcomingHeading = "Nadcházející akce"
	defaultPastHeading     = "Proběhlé akce"
	defaultNotFoundTitle   = "Akce nenalezena"
	defaultNotFoundText    = "Tato akce neexistuje nebo byla odstraněna."
	defaultBackToList      = "Zpět na seznam akcí"
	defaultGalleryTitle    = "Fotogalerie"
	defaultRecapTitle      = "Jak to bylo"
	defaultVideoTitle      = "Video recap"
	defaultAboutTitle      = "O akci"
)

// EventsPageOrDefault completa los títulos del listado.
// El subtítulo cae a events.subheading.
func (t Texts) EventsPageOrDefault() EventsPage {
	var p EventsPage
	if t.EventsPage != nil {
		p = *t.EventsPage
	}
	if p.Subtitle == "" && t.Events != nil {
		p.Subtitle = t.Events.Subheading
	}
	if p.UpcomingHeading == "" {
		p.UpcomingHeading = defaultUpcomingHeading
	}
	if p.PastHeading == "" {
		p.PastHeading = defaultPastHeading
	}
	return p
}

func (t Texts) EventDetailOrDefault() EventDetail {
	var d EventDetail
	if t.EventDetail != nil {
		d = *t.EventDetail
	}
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	fill(&d.NotFoundTitle, defaultNotFoundTitle)
	fill(&d.NotFoundText, defaultNotFoundText)
	fill(&d.BackToList, defaultBackToList)
	fill(&d.GalleryTitle, defaultGalleryTitle)
	fill(&d.RecapTitle, defaultRecapTitle)
	fill(&d.VideoTitle, defaultVideoTitle)
	fill(&d.AboutTitle, defaultAboutTitle)
	return d
}
