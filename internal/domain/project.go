package domain

import "time"

// User is an account identified by its unique handle.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Project is a hosted git repository. A project with a parent is a fork.
type Project struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	UserID    *int64    `json:"user_id,omitempty"`
	Owner     string    `json:"owner,omitempty"`
	ParentID  *int64    `json:"parent_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// IsFork reports whether the project was forked from another project.
func (p *Project) IsFork() bool {
	return p.ParentID != nil
}

// FullName returns owner/name for forks and the bare name otherwise.
func (p *Project) FullName() string {
	if p.IsFork() {
		return p.Owner + "/" + p.Name
	}
	return p.Name
}

// Path returns the repository location relative to its storage folder.
func (p *Project) Path() string {
	return p.FullName() + ".git"
}

// IsOwnedBy reports whether the user owns the project.
func (p *Project) IsOwnedBy(u *User) bool {
	return p.UserID != nil && u != nil && *p.UserID == u.ID
}
