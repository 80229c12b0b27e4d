package mattermost

// In this file: wire representations of Mattermost API resources.  All
// timestamps are epoch milliseconds as sent by the server; zero means "not
// set" for delete_at and edit_at.

// Team is a Mattermost team.
type Team struct {
	ID          string `json:"id"`
	CreateAt    int64  `json:"create_at"`
	UpdateAt    int64  `json:"update_at"`
	DeleteAt    int64  `json:"delete_at"`
	DisplayName string `json:"display_name"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// User is a Mattermost user profile.
type User struct {
	ID        string `json:"id"`
	CreateAt  int64  `json:"create_at"`
	UpdateAt  int64  `json:"update_at"`
	DeleteAt  int64  `json:"delete_at"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Nickname  string `json:"nickname"`
	Email     string `json:"email"`
	Roles     string `json:"roles"`
	Locale    string `json:"locale"`
}

// Channel types as reported in Channel.Type.
const (
	ChannelOpen    = "O"
	ChannelPrivate = "P"
	ChannelDirect  = "D"
	ChannelGroup   = "G"
)

// Channel is a Mattermost channel.
type Channel struct {
	ID            string `json:"id"`
	CreateAt      int64  `json:"create_at"`
	UpdateAt      int64  `json:"update_at"`
	DeleteAt      int64  `json:"delete_at"`
	TeamID        string `json:"team_id"`
	Type          string `json:"type"`
	DisplayName   string `json:"display_name"`
	Name          string `json:"name"`
	Header        string `json:"header"`
	Purpose       string `json:"purpose"`
	LastPostAt    int64  `json:"last_post_at"`
	TotalMsgCount int64  `json:"total_msg_count"`
	CreatorID     string `json:"creator_id"`
}

// Post is a single Mattermost message.
type Post struct {
	ID         string `json:"id"`
	CreateAt   int64  `json:"create_at"`
	UpdateAt   int64  `json:"update_at"`
	EditAt     int64  `json:"edit_at"`
	DeleteAt   int64  `json:"delete_at"`
	IsPinned   bool   `json:"is_pinned"`
	UserID     string `json:"user_id"`
	ChannelID  string `json:"channel_id"`
	RootID     string `json:"root_id"`
	OriginalID string `json:"original_id"`
	Message    string `json:"message"`
	Type       string `json:"type"`
	Hashtags   string `json:"hashtags"`
	ReplyCount int    `json:"reply_count"`
}

// PostList is an ordered collection of posts.  Order is the canonical
// iteration sequence; Posts may contain entries that are not in Order.
type PostList struct {
	Order      []string        `json:"order"`
	Posts      map[string]Post `json:"posts"`
	NextPostID string          `json:"next_post_id"`
	PrevPostID string          `json:"prev_post_id"`
}

// Reaction is an emoji reaction on a post.
type Reaction struct {
	UserID    string `json:"user_id"`
	PostID    string `json:"post_id"`
	EmojiName string `json:"emoji_name"`
	CreateAt  int64  `json:"create_at"`
}

// PostDraft is the payload for creating a post.
type PostDraft struct {
	ChannelID string `json:"channel_id"`
	Message   string `json:"message"`
	RootID    string `json:"root_id,omitempty"`
}

// SearchChannelsRequest is the payload for the cross-team channel search
// endpoint.
type SearchChannelsRequest struct {
	Term    string   `json:"term"`
	TeamIDs []string `json:"team_ids,omitempty"`
	Page    int      `json:"page"`
	PerPage int      `json:"per_page"`
}

// SearchPostsRequest is the payload for the team-scoped post search
// endpoint.
type SearchPostsRequest struct {
	Terms      string `json:"terms"`
	IsOrSearch bool   `json:"is_or_search"`
	Page       int    `json:"page"`
	PerPage    int    `json:"per_page"`
}

// ThreadOptions selects a page of a post thread.
type ThreadOptions struct {
	Direction string
	FromPost  string
	PerPage   int
}
