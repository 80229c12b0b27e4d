package mmcp

// In this file: normalized entity types returned by the facade, and their
// conversion from the wire representation.  Conversion is explicit per field
// so that the zero-sentinel rule for delete_at/edit_at stays auditable.

import (
	"time"

	"github.com/mmkit/mmcp/internal/mattermost"
)

// millis converts a Mattermost epoch-millisecond timestamp to UTC time.
func millis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// optionalMillis is like millis, but treats zero as "not set" and returns
// the zero time, which renders as absent in JSON via omitzero.
func optionalMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return millis(ms)
}

// User is a normalized Mattermost user profile.
type User struct {
	ID        string    `json:"id"`
	CreateAt  time.Time `json:"create_at"`
	UpdateAt  time.Time `json:"update_at"`
	DeleteAt  time.Time `json:"delete_at,omitzero"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	Nickname  string    `json:"nickname,omitempty"`
	Email     string    `json:"email,omitempty"`
	Roles     string    `json:"roles,omitempty"`
	Locale    string    `json:"locale,omitempty"`
}

func convertUser(u mattermost.User) User {
	return User{
		ID:        u.ID,
		CreateAt:  millis(u.CreateAt),
		UpdateAt:  millis(u.UpdateAt),
		DeleteAt:  optionalMillis(u.DeleteAt),
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Nickname:  u.Nickname,
		Email:     u.Email,
		Roles:     u.Roles,
		Locale:    u.Locale,
	}
}

// Channel is a normalized Mattermost channel.
type Channel struct {
	ID            string    `json:"id"`
	CreateAt      time.Time `json:"create_at"`
	UpdateAt      time.Time `json:"update_at"`
	DeleteAt      time.Time `json:"delete_at,omitzero"`
	TeamID        string    `json:"team_id"`
	Type          string    `json:"type"`
	DisplayName   string    `json:"display_name"`
	Name          string    `json:"name"`
	Header        string    `json:"header,omitempty"`
	Purpose       string    `json:"purpose,omitempty"`
	LastPostAt    time.Time `json:"last_post_at,omitzero"`
	TotalMsgCount int64     `json:"total_msg_count"`
	CreatorID     string    `json:"creator_id,omitempty"`
}

func convertChannel(ch mattermost.Channel) Channel {
	return Channel{
		ID:            ch.ID,
		CreateAt:      millis(ch.CreateAt),
		UpdateAt:      millis(ch.UpdateAt),
		DeleteAt:      optionalMillis(ch.DeleteAt),
		TeamID:        ch.TeamID,
		Type:          ch.Type,
		DisplayName:   ch.DisplayName,
		Name:          ch.Name,
		Header:        ch.Header,
		Purpose:       ch.Purpose,
		LastPostAt:    optionalMillis(ch.LastPostAt),
		TotalMsgCount: ch.TotalMsgCount,
		CreatorID:     ch.CreatorID,
	}
}

// Post is a normalized Mattermost post.
type Post struct {
	ID         string    `json:"id"`
	CreateAt   time.Time `json:"create_at"`
	UpdateAt   time.Time `json:"update_at"`
	EditAt     time.Time `json:"edit_at,omitzero"`
	DeleteAt   time.Time `json:"delete_at,omitzero"`
	IsPinned   bool      `json:"is_pinned"`
	UserID     string    `json:"user_id"`
	ChannelID  string    `json:"channel_id"`
	RootID     string    `json:"root_id,omitempty"`
	OriginalID string    `json:"original_id,omitempty"`
	Message    string    `json:"message"`
	Type       string    `json:"type,omitempty"`
	Hashtags   string    `json:"hashtags,omitempty"`
	ReplyCount int       `json:"reply_count,omitempty"`
}

func convertPost(p mattermost.Post) Post {
	return Post{
		ID:         p.ID,
		CreateAt:   millis(p.CreateAt),
		UpdateAt:   millis(p.UpdateAt),
		EditAt:     optionalMillis(p.EditAt),
		DeleteAt:   optionalMillis(p.DeleteAt),
		IsPinned:   p.IsPinned,
		UserID:     p.UserID,
		ChannelID:  p.ChannelID,
		RootID:     p.RootID,
		OriginalID: p.OriginalID,
		Message:    p.Message,
		Type:       p.Type,
		Hashtags:   p.Hashtags,
		ReplyCount: p.ReplyCount,
	}
}

// PostList is a normalized ordered collection of posts.  Order is the
// canonical iteration sequence.
type PostList struct {
	Order []string        `json:"order"`
	Posts map[string]Post `json:"posts"`
}

func convertPostList(pl *mattermost.PostList) *PostList {
	out := &PostList{
		Order: make([]string, len(pl.Order)),
		Posts: make(map[string]Post, len(pl.Posts)),
	}
	copy(out.Order, pl.Order)
	for id, p := range pl.Posts {
		out.Posts[id] = convertPost(p)
	}
	return out
}

// Reaction is a normalized emoji reaction on a post.
type Reaction struct {
	UserID    string    `json:"user_id"`
	PostID    string    `json:"post_id"`
	EmojiName string    `json:"emoji_name"`
	CreateAt  time.Time `json:"create_at"`
}

func convertReaction(r mattermost.Reaction) Reaction {
	return Reaction{
		UserID:    r.UserID,
		PostID:    r.PostID,
		EmojiName: r.EmojiName,
		CreateAt:  millis(r.CreateAt),
	}
}
