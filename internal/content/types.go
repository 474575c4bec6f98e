package content

type About struct {
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Tagline     string   `json:"tagline"`
	Age         int      `json:"age"`
	Nationality string   `json:"nationality"`
	BasedIn     string   `json:"based_in"`
	Education   string   `json:"education"`
	Quote       string   `json:"quote"`
	Bio         string   `json:"bio"`
	FocusAreas  []string `json:"focus_areas"`
	Mission     string   `json:"mission"`
	Vision      string   `json:"vision"`
}

type Position struct {
	Title            string   `json:"title"`
	Organization     string   `json:"organization"`
	Period           string   `json:"period"`
	Description      string   `json:"description"`
	Responsibilities []string `json:"responsibilities"`
}

type Leadership struct {
	CurrentPositions []Position `json:"current_positions"`
	PastPositions    []Position `json:"past_positions"`
}

type Recognition struct {
	Title        string `json:"title"`
	Organization string `json:"organization"`
	Year         string `json:"year"`
	Location     string `json:"location,omitempty"`
	Distinction  string `json:"distinction,omitempty"`
}

type Achievements struct {
	Fellowships []Recognition `json:"fellowships"`
	Awards      []Recognition `json:"awards"`
}

type Event struct {
	Title       string `json:"title"`
	Location    string `json:"location"`
	Date        string `json:"date"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

type Events struct {
	UpcomingEvents []Event `json:"upcoming_events"`
	PastEvents     []Event `json:"past_events"`
}

type Project struct {
	Title       string `json:"title"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Link        string `json:"link,omitempty"`
}

type Projects struct {
	FeaturedProjects []Project `json:"featured_projects"`
}

// Bundle holds one language's sections. Nil sections fall back to English.
type Bundle struct {
	About        *About
	Leadership   *Leadership
	Achievements *Achievements
	Events       *Events
	Projects     *Projects
}
