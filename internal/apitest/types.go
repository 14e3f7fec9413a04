package apitest

import "time"

type user struct {
	ID       int64
	Email    string
	Username string
	Password string
}

type founder struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email,omitempty"`
	Username     string   `json:"username,omitempty"`
	Country      string   `json:"country,omitempty"`
	Timezone     string   `json:"timezone,omitempty"`
	Stage        string   `json:"stage,omitempty"`
	Industry     string   `json:"industry,omitempty"`
	Skills       []string `json:"skills,omitempty"`
	LookingFor   string   `json:"looking_for,omitempty"`
	Personality  []string `json:"personality,omitempty"`
	CurrentGoal  string   `json:"current_goal,omitempty"`
	Bio          string   `json:"bio,omitempty"`
	ProfileImage string   `json:"profile_image,omitempty"`
	Online       bool     `json:"online"`
}

type idea struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	Problem       string    `json:"problem,omitempty"`
	Solution      string    `json:"solution,omitempty"`
	NeedHelp      string    `json:"need_help,omitempty"`
	Industry      string    `json:"industry,omitempty"`
	Stage         string    `json:"stage,omitempty"`
	Upvotes       int       `json:"upvotes"`
	Author        string    `json:"author,omitempty"`
	CommentsCount int       `json:"comments_count"`
	CreatedAt     time.Time `json:"created_at"`

	collaborators []int64
}

type comment struct {
	ID        int64     `json:"id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type room struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Topic        string `json:"topic,omitempty"`
	MembersCount int    `json:"members_count"`
	Active       bool   `json:"active"`

	members map[int64]bool
}

type roomMessage struct {
	ID        int64     `json:"id"`
	Room      int64     `json:"room"`
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type connection struct {
	ID          int64     `json:"id"`
	FromFounder int64     `json:"from_founder"`
	ToFounder   int64     `json:"to_founder"`
	Status      string    `json:"status"`
	Message     string    `json:"message,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type message struct {
	ID        int64     `json:"id"`
	Sender    int64     `json:"sender"`
	Recipient int64     `json:"recipient"`
	Content   string    `json:"content"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

type progressUpdate struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`

	owner int64
}

// Request is what the server saw of one incoming request.
type Request struct {
	Method        string
	Path          string
	RawQuery      string
	Authorization string
	ContentType   string
	RequestID     string
}

// Upload is a received profile image.
type Upload struct {
	UserID   int64
	Field    string
	Filename string
	Size     int
}
