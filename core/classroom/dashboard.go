package classroom

import "github.com/trezcool/edumind/core"

type (
	Stat struct {
		Title       string `json:"title"`
		Value       string `json:"value"`
		Description string `json:"description"`
		Trend       string `json:"trend,omitempty"`
	}

	EngagementPoint struct {
		Day    string `json:"day"`
		Views  int    `json:"views"`
		Active int    `json:"active"`
	}

	SubjectScore struct {
		Subject string `json:"subject"`
		Score   int    `json:"score"`
	}

	Activity struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Time        string `json:"time"`
	}

	ScheduleItem struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Time        string `json:"time"`
		Type        string `json:"type"` // class | deadline
	}

	TeacherDashboard struct {
		Stats       []Stat            `json:"stats"`
		Engagement  []EngagementPoint `json:"engagement"`
		Performance []SubjectScore    `json:"performance"`
		Activities  []Activity        `json:"activities"`
		Schedule    []ScheduleItem    `json:"schedule"`
	}

	LearnedTopic struct {
		Title    string `json:"title"`
		Subject  string `json:"subject"`
		Teacher  string `json:"teacher"`
		Progress int    `json:"progress"` // percent
	}

	Deadline struct {
		Title   string `json:"title"`
		Subject string `json:"subject"`
		Due     string `json:"due"`
	}

	Recommendation struct {
		Title       string `json:"title"`
		Subject     string `json:"subject"`
		Description string `json:"description"`
		Teacher     string `json:"teacher"`
	}

	StudentDashboard struct {
		Stats           []Stat           `json:"stats"`
		RecentlyLearned []LearnedTopic   `json:"recently_learned"`
		Deadlines       []Deadline       `json:"deadlines"`
		Recommended     []Recommendation `json:"recommended"`
	}

	LibraryItem struct {
		Title string `json:"title"`
		Date  string `json:"date"`
	}

	Library struct {
		RecentUploads     []LibraryItem `json:"recent_uploads"`
		RecentAssignments []LibraryItem `json:"recent_assignments"`
		RecentTests       []LibraryItem `json:"recent_tests"`
	}

	Feature struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}

	Landing struct {
		Headline        string    `json:"headline"`
		Tagline         string    `json:"tagline"`
		Features        []Feature `json:"features"`
		TeacherFeatures []Feature `json:"teacher_features"`
		StudentFeatures []Feature `json:"student_features"`
	}
)

// Welcome toasts, shown once the dashboard has loaded.
var (
	TeacherWelcome = core.Notice{
		Title:       "Welcome to your dashboard!",
		Description: "You can manage your classes and monitor student progress here.",
	}
	StudentWelcome = core.Notice{
		Title:       "Welcome to your dashboard!",
		Description: "You can view your progress and upcoming assignments here.",
	}
)

func NewTeacherDashboard() TeacherDashboard {
	return TeacherDashboard{
		Stats: []Stat{
			{Title: "Active Students", Value: "124", Description: "Total students learning from you", Trend: "+12% from last month"},
			{Title: "Uploaded Materials", Value: "36", Description: "Notes and presentations", Trend: "+3 new this week"},
			{Title: "Assignments", Value: "18", Description: "Active assignments", Trend: "4 due this week"},
			{Title: "Upcoming Tests", Value: "5", Description: "Scheduled tests", Trend: "Next on Friday"},
		},
		Engagement: []EngagementPoint{
			{Day: "Mon", Views: 45, Active: 32},
			{Day: "Tue", Views: 52, Active: 38},
			{Day: "Wed", Views: 61, Active: 45},
			{Day: "Thu", Views: 48, Active: 40},
			{Day: "Fri", Views: 64, Active: 52},
			{Day: "Sat", Views: 38, Active: 30},
			{Day: "Sun", Views: 29, Active: 25},
		},
		Performance: []SubjectScore{
			{Subject: "Math", Score: 78},
			{Subject: "Science", Score: 82},
			{Subject: "History", Score: 74},
			{Subject: "English", Score: 85},
			{Subject: "Physics", Score: 79},
		},
		Activities: []Activity{
			{Title: "Assignment Submitted", Description: "5 students submitted the Physics assignment", Time: "2 hours ago"},
			{Title: "New Material Viewed", Description: "Your 'Introduction to Calculus' notes were viewed by 28 students", Time: "5 hours ago"},
			{Title: "New Question", Description: "A student asked a question about the Chemistry experiment", Time: "Yesterday"},
			{Title: "New Student Joined", Description: "3 new students joined your Physics class", Time: "2 days ago"},
		},
		Schedule: []ScheduleItem{
			{Title: "Physics Class", Description: "Grade 11-A", Time: "Today, 10:00 AM", Type: "class"},
			{Title: "Math Assignment Due", Description: "Trigonometry Problems", Time: "Tomorrow, 11:59 PM", Type: "deadline"},
			{Title: "Chemistry Lab", Description: "Grade 10-B", Time: "Wednesday, 2:00 PM", Type: "class"},
			{Title: "Physics Test", Description: "Mechanics and Dynamics", Time: "Friday, 9:00 AM", Type: "deadline"},
		},
	}
}

func NewStudentDashboard() StudentDashboard {
	return StudentDashboard{
		Stats: []Stat{
			{Title: "Courses", Value: "5", Description: "Enrolled courses"},
			{Title: "Assignments", Value: "8", Description: "3 pending submissions"},
			{Title: "Upcoming Tests", Value: "2", Description: "Next test in 3 days"},
			{Title: "Study Time", Value: "12h", Description: "This week"},
		},
		RecentlyLearned: []LearnedTopic{
			{Title: "Introduction to Calculus", Subject: "Mathematics", Teacher: "Prof. Johnson", Progress: 75},
			{Title: "Mechanics and Dynamics", Subject: "Physics", Teacher: "Dr. Smith", Progress: 60},
			{Title: "Chemical Bonding", Subject: "Chemistry", Teacher: "Ms. Williams", Progress: 90},
			{Title: "Cell Structure and Function", Subject: "Biology", Teacher: "Dr. Brown", Progress: 40},
		},
		Deadlines: []Deadline{
			{Title: "Calculus Assignment", Subject: "Mathematics", Due: "Due Tomorrow, 11:59 PM"},
			{Title: "Physics Quiz", Subject: "Physics", Due: "Friday, 10:00 AM"},
			{Title: "Chemistry Lab Report", Subject: "Chemistry", Due: "Next Monday, 9:00 AM"},
		},
		Recommended: []Recommendation{
			{Title: "Derivatives and Applications", Subject: "Mathematics", Description: "Learn about derivatives and their real-world applications.", Teacher: "Prof. Johnson"},
			{Title: "Newton's Laws of Motion", Subject: "Physics", Description: "Understand the fundamental laws that govern motion.", Teacher: "Dr. Smith"},
			{Title: "Periodic Table and Elements", Subject: "Chemistry", Description: "Explore the periodic table and properties of elements.", Teacher: "Ms. Williams"},
		},
	}
}

func newLibrary() Library {
	return Library{
		RecentUploads: []LibraryItem{
			{Title: "Introduction to Calculus", Date: "2 days ago"},
			{Title: "Chemical Bonding", Date: "5 days ago"},
			{Title: "Mechanics and Dynamics", Date: "1 week ago"},
			{Title: "Cell Structure and Function", Date: "2 weeks ago"},
		},
		RecentAssignments: []LibraryItem{
			{Title: "Calculus Problem Set", Date: "Yesterday"},
			{Title: "Physics Homework", Date: "3 days ago"},
			{Title: "Chemistry Lab Report", Date: "1 week ago"},
			{Title: "Biology Research", Date: "2 weeks ago"},
		},
		RecentTests: []LibraryItem{
			{Title: "Calculus Mid-term", Date: "Tomorrow"},
			{Title: "Physics Quiz", Date: "Next week"},
			{Title: "Chemistry Test", Date: "In 2 weeks"},
			{Title: "Biology Final", Date: "In 1 month"},
		},
	}
}

func NewLanding() Landing {
	return Landing{
		Headline: "Connecting Teachers and Students in a Smarter Way",
		Tagline: "EduMind reduces teacher workload by managing assignments, tests, " +
			"and providing personalized learning experiences for students.",
		Features: []Feature{
			{Title: "Centralized Learning Materials", Description: "Teachers upload notes and materials in one place, making it easy for students to access everything they need."},
			{Title: "Personalized Learning", Description: "Students can learn from their preferred teaching style with AI-powered chat based on teacher's notes."},
			{Title: "Automated Assignments", Description: "AI generates assignments and tests based on uploaded materials, saving teachers valuable time."},
		},
		TeacherFeatures: []Feature{
			{Title: "Comprehensive Dashboard", Description: "View active students, track engagement, and monitor classroom activities at a glance."},
			{Title: "AI-Powered Assignment Creation", Description: "Automatically generate assignments and tests based on your uploaded materials."},
			{Title: "Reduced Workload", Description: "Stop answering the same questions repeatedly - let the AI handle common doubts based on your notes."},
			{Title: "Organized Calendar", Description: "Keep track of upcoming assignments, tests, and important dates in one place."},
		},
		StudentFeatures: []Feature{
			{Title: "Personalized Learning Experience", Description: "Learn from your preferred teacher's style through AI-powered chat based on their notes."},
			{Title: "Instant Doubt Resolution", Description: "Get immediate answers to your questions without waiting for teacher availability."},
			{Title: "Organized Study Materials", Description: "Access all your learning materials, assignments, and tests in one centralized location."},
			{Title: "Progress Tracking", Description: "Keep track of your learning journey with recently learned topics and upcoming assignments."},
		},
	}
}
