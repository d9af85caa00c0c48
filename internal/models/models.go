package models

import (
	"time"
)

// User presence values. The store itself accepts any token; the API
// rejects anything outside this set.
const (
	StatusOnline  = "online"
	StatusOffline = "offline"
	StatusAway    = "away"
	StatusBusy    = "busy"
)

// Team membership roles.
const (
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
	RoleMember = "member"
)

const (
	ChannelTypeText  = "text"
	ChannelTypeVoice = "voice"
)

const (
	MessageTypeText   = "text"
	MessageTypeFile   = "file"
	MessageTypeSystem = "system"
)

const (
	CallStatusActive = "active"
	CallStatusEnded  = "ended"
)

// DefaultTeamColor is used when a team is created without a color tag.
const DefaultTeamColor = "#6264A7"

// User is a person in the workspace.
//
// Email doubles as the contact handle: it is what GetByEmail looks up.
// Users are never deleted; only Status changes after creation.
type User struct {
	ID          int64   `json:"id"`
	Username    string  `json:"username"`
	DisplayName string  `json:"display_name"`
	Email       string  `json:"email"`
	Avatar      *string `json:"avatar"`
	Status      string  `json:"status"`
	Role        string  `json:"role"`
}

// Team is a named collaboration space. Channels and members point at it
// by TeamID; the team itself holds no references.
type Team struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Avatar      *string   `json:"avatar"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"created_at"`
}

// Channel belongs to exactly one team.
type Channel struct {
	ID          int64     `json:"id"`
	TeamID      int64     `json:"team_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Type        string    `json:"type"`
	CreatedAt   time.Time `json:"created_at"`
}

// TeamMember links one user to one team. It is the only thing that
// grants access to a team's channels, messages and calls.
type TeamMember struct {
	ID       int64     `json:"id"`
	TeamID   int64     `json:"team_id"`
	UserID   int64     `json:"user_id"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

// FileAttachment describes the file carried by a "file" message.
type FileAttachment struct {
	URL  string `json:"url"`
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// Message is immutable after creation except for Reactions, which only
// ever grow. Reactions are free-form tokens; the same token may appear
// any number of times.
type Message struct {
	ID        int64           `json:"id"`
	ChannelID int64           `json:"channel_id"`
	UserID    int64           `json:"user_id"`
	Content   string          `json:"content"`
	Type      string          `json:"type"`
	File      *FileAttachment `json:"file"`
	ReplyToID *int64          `json:"reply_to_id"`
	Reactions []string        `json:"reactions"`
	CreatedAt time.Time       `json:"created_at"`
}

// VideoCall is a call session scoped to a channel. Participants behaves
// like an ordered set: the host is seeded first and no user appears twice.
type VideoCall struct {
	ID           int64      `json:"id"`
	ChannelID    int64      `json:"channel_id"`
	HostUserID   int64      `json:"host_user_id"`
	Title        string     `json:"title"`
	Status       string     `json:"status"`
	Participants []int64    `json:"participants"`
	StartedAt    time.Time  `json:"started_at"`
	EndedAt      *time.Time `json:"ended_at"`
}

// Derived views. These are assembled on read and never stored.

type TeamWithChannels struct {
	Team
	Channels    []Channel `json:"channels"`
	MemberCount int       `json:"member_count"`
}

type MessageWithUser struct {
	Message
	User    User             `json:"user"`
	ReplyTo *MessageWithUser `json:"reply_to,omitempty"`
}

type TeamMemberWithUser struct {
	TeamMember
	User User `json:"user"`
}

type VideoCallWithParticipants struct {
	VideoCall
	Host             User   `json:"host"`
	ParticipantUsers []User `json:"participant_users"`
}

// Insert shapes. The store assigns ids and timestamps; callers never do.

type NewUser struct {
	Username    string
	DisplayName string
	Email       string
	Avatar      *string
	Role        string
}

type NewTeam struct {
	Name        string
	Description *string
	Avatar      *string
	Color       string
}

type NewChannel struct {
	TeamID      int64
	Name        string
	Description *string
	Type        string
}

type NewTeamMember struct {
	TeamID int64
	UserID int64
	Role   string
}

type NewMessage struct {
	ChannelID int64
	UserID    int64
	Content   string
	Type      string
	File      *FileAttachment
	ReplyToID *int64
}

type NewVideoCall struct {
	ChannelID  int64
	HostUserID int64
	Title      string
}
