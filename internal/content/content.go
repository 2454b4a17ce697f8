// Package content holds the static placeholder data shown by the screens.
package content

// Event describes an upcoming event. Display shape only; nothing fills it yet.
type Event struct {
	Name     string
	Address  string
	Date     string
	ImageURL string
}

// PrayerTimes holds the Ramadan times shown on Home.
type PrayerTimes struct {
	Imsak string
	Aksam string
}

// SocialLink is an outbound link button. It has no destination.
type SocialLink struct {
	Name string
}

// Card titles on the Home screen.
const (
	EventsTitle  = "Bevorstehende Ereignisse"
	RamadanTitle = "Ramazaninfos"
	FollowTitle  = "Folgt uns auf"
)

// Centered labels of the placeholder screens.
const (
	SettingsLabel = "Settings Fragment Content"
	ProfileLabel  = "Profile Fragment Content"
)

// DefaultTitle is the top bar title.
const DefaultTitle = "GT Württemberg"

// UpcomingEvents returns the placeholder lines of the events card.
func UpcomingEvents() []string {
	return []string{"Event 1", "Event 2", "Event 3"}
}

// Ramadan returns the placeholder prayer times.
func Ramadan() PrayerTimes {
	return PrayerTimes{Imsak: "06:00", Aksam: "18:00"}
}

// SocialLinks returns the follow-us buttons in display order.
func SocialLinks() []SocialLink {
	return []SocialLink{{Name: "Instagram"}, {Name: "Facebook"}}
}
