package models

// Video is a record owned by exactly one user.
type Video struct {
	// ID is the server-assigned identifier.
	ID int64 `json:"id"`

	// UserID is the owner. It is taken from the authenticated caller at
	// creation time and is never read from or written to client payloads.
	UserID int64 `json:"-"`

	Name        string `json:"name"`
	Description string `json:"description"`
}

// TableName returns the name of the database table
// associated with the Video model.
func (v Video) TableName() string {
	return "videos"
}

// NewVideo is the payload accepted when creating a video.
type NewVideo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// VideoUpdate lists the fields a client may change on an existing video.
// Only non-nil fields are applied; each one overwrites the stored value.
type VideoUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u VideoUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil
}

// Apply returns a copy of v with every provided field overwritten.
func (u VideoUpdate) Apply(v Video) Video {
	if u.Name != nil {
		v.Name = *u.Name
	}
	if u.Description != nil {
		v.Description = *u.Description
	}
	return v
}
