package api

import "time"

// Account is returned by Signup.
type Account struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

type Founder struct {
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

// ProfileUpdate is a partial profile. Nil fields are left unchanged.
type ProfileUpdate struct {
	Name        *string  `json:"name,omitempty"`
	Country     *string  `json:"country,omitempty"`
	Timezone    *string  `json:"timezone,omitempty"`
	Stage       *string  `json:"stage,omitempty"`
	Industry    *string  `json:"industry,omitempty"`
	Skills      []string `json:"skills,omitempty"`
	LookingFor  *string  `json:"looking_for,omitempty"`
	Personality []string `json:"personality,omitempty"`
	CurrentGoal *string  `json:"current_goal,omitempty"`
	Bio         *string  `json:"bio,omitempty"`
}

// FounderFilter narrows GetFounders. Empty fields are not sent.
type FounderFilter struct {
	Stage      string `url:"stage,omitempty"`
	Industry   string `url:"industry,omitempty"`
	LookingFor string `url:"looking_for,omitempty"`
}

type searchQuery struct {
	Q string `url:"q"`
}

type Idea struct {
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
	CreatedAt     time.Time `json:"created_at,omitzero"`
}

// NewIdea is the body of CreateIdea.
type NewIdea struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Problem     string `json:"problem,omitempty"`
	Solution    string `json:"solution,omitempty"`
	NeedHelp    string `json:"need_help,omitempty"`
	Industry    string `json:"industry,omitempty"`
	Stage       string `json:"stage,omitempty"`
}

type Comment struct {
	ID        int64     `json:"id"`
	Author    string    `json:"author,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// MatchResult is the outcome of a roulette spin.
type MatchResult struct {
	MatchedFounder Founder `json:"matched_founder"`
	SessionID      string  `json:"session_id"`
}

type Room struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Topic        string `json:"topic,omitempty"`
	MembersCount int    `json:"members_count"`
	Active       bool   `json:"active"`
}

type RoomMessage struct {
	ID        int64     `json:"id"`
	Room      int64     `json:"room,omitempty"`
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

type Connection struct {
	ID          int64     `json:"id"`
	FromFounder int64     `json:"from_founder"`
	ToFounder   int64     `json:"to_founder"`
	Status      string    `json:"status"`
	Message     string    `json:"message,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
}

type Message struct {
	ID        int64     `json:"id"`
	Sender    int64     `json:"sender"`
	Recipient int64     `json:"recipient"`
	Content   string    `json:"content"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

type ProgressUpdate struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
}

type contentBody struct {
	Content string `json:"content"`
}

type connectionRequest struct {
	ToFounder int64  `json:"to_founder"`
	Message   string `json:"message,omitempty"`
}

type messageRequest struct {
	Recipient int64  `json:"recipient"`
	Content   string `json:"content"`
}

type progressRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}
