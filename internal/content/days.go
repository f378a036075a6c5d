package content

import "fmt"

// TotalDays is the length of the journey curriculum.
const TotalDays = 365

// Phase is a themed stretch of the journey.
type Phase struct {
	Name     string
	FirstDay int
	LastDay  int
}

// Phases covers days 1..TotalDays contiguously.
var Phases = []Phase{
	{"Shahada and First Steps", 1, 30},
	{"Learning to Pray", 31, 60},
	{"Meeting the Quran", 61, 90},
	{"Prophetic Character", 91, 120},
	{"Purification of the Heart", 121, 150},
	{"Community and Belonging", 151, 180},
	{"Fasting and Self-Discipline", 181, 210},
	{"Charity and Generosity", 211, 240},
	{"Names of Allah", 241, 270},
	{"Stories of the Prophets", 271, 300},
	{"Living the Deen", 301, 330},
	{"Reflection and Renewal", 331, 365},
}

// Day is one entry of the curriculum: the metadata the UI renders. The
// progression engine only ever consumes the identifier space 1..TotalDays.
type Day struct {
	ID         int
	Phase      string
	Title      string
	Reflection string
}

// Curated openings; later days fall back to their phase theme.
var dayTitles = map[int]string{
	1:  "Why I Chose Islam",
	2:  "The Meaning of the Shahada",
	3:  "Allah: The One",
	4:  "Who Is Muhammad ﷺ?",
	5:  "The Five Pillars at a Glance",
	6:  "Your First Wudu",
	7:  "One Week In: Small Steps Count",
	8:  "The Mercy of Beginnings",
	9:  "What the Quran Is",
	10: "A Muslim's Day",
	11: "Halal and Haram: The Basics",
	12: "Making Dua: Talking to Allah",
	13: "The Angels and the Unseen",
	14: "Two Weeks In: Building Rhythm",
}

var dayReflections = map[int]string{
	1: "What first drew your heart toward Islam?",
	2: "Say the Shahada slowly. Which word stays with you?",
	3: "Where in your day did you notice Allah's signs?",
	4: "Which quality of the Prophet ﷺ do you want to grow in?",
	5: "Which pillar feels most natural to you right now? Which feels hardest?",
	6: "How did the water feel as an act of worship, not just washing?",
	7: "Look back on your first week. What changed?",
}

// PhaseForDay returns the phase containing the given day.
func PhaseForDay(id int) (Phase, bool) {
	for _, p := range Phases {
		if id >= p.FirstDay && id <= p.LastDay {
			return p, true
		}
	}
	return Phase{}, false
}

// Get returns the curriculum entry for a day ID, or false when the ID is
// outside 1..TotalDays.
func Get(id int) (Day, bool) {
	ph, ok := PhaseForDay(id)
	if !ok {
		return Day{}, false
	}
	d := Day{ID: id, Phase: ph.Name}
	if t, ok := dayTitles[id]; ok {
		d.Title = t
	} else {
		d.Title = fmt.Sprintf("Day %d: %s", id, ph.Name)
	}
	if r, ok := dayReflections[id]; ok {
		d.Reflection = r
	} else {
		d.Reflection = fmt.Sprintf("What did today's reading on %q change in how you see your deen?", ph.Name)
	}
	return d, true
}
