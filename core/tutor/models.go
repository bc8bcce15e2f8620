package tutor

import "errors"

// Subject names the tutor has canned explanations for.
const (
	SubjectMathematics = "Mathematics"
	SubjectPhysics     = "Physics"
)

var ErrPersonaNotFound = errors.New("persona not found")

// Persona is a subject-matter teacher whose teaching style the assistant imitates.
type Persona struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Subject string  `json:"subject"`
	Avatar  string  `json:"avatar"`
	Rating  float64 `json:"rating"` // 0.0 - 5.0
}

type Subject struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

const avatarPlaceholder = "/placeholder.svg?height=40&width=40"

var (
	Subjects = []Subject{
		{ID: "math", Name: SubjectMathematics},
		{ID: "physics", Name: SubjectPhysics},
		{ID: "chemistry", Name: "Chemistry"},
		{ID: "biology", Name: "Biology"},
		{ID: "history", Name: "History"},
		{ID: "english", Name: "English"},
	}

	Personas = []Persona{
		{ID: "1", Name: "Prof. Johnson", Subject: SubjectMathematics, Avatar: avatarPlaceholder, Rating: 4.8},
		{ID: "2", Name: "Dr. Smith", Subject: SubjectPhysics, Avatar: avatarPlaceholder, Rating: 4.7},
		{ID: "3", Name: "Ms. Williams", Subject: "Chemistry", Avatar: avatarPlaceholder, Rating: 4.9},
		{ID: "4", Name: "Dr. Brown", Subject: "Biology", Avatar: avatarPlaceholder, Rating: 4.6},
		{ID: "5", Name: "Mr. Davis", Subject: "History", Avatar: avatarPlaceholder, Rating: 4.5},
	}
)

// SubjectIDs returns the IDs of all Subjects.
func SubjectIDs() []string {
	ids := make([]string, 0, len(Subjects))
	for _, s := range Subjects {
		ids = append(ids, s.ID)
	}
	return ids
}

func FindPersona(id string) (Persona, error) {
	for _, p := range Personas {
		if p.ID == id {
			return p, nil
		}
	}
	return Persona{}, ErrPersonaNotFound
}
