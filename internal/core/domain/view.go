package domain

// AccessDeniedTitle and AccessDeniedNotice form the denial marker.
const (
	AccessDeniedTitle  = "Access Denied"
	AccessDeniedNotice = "You do not have the required role to view this section."
	AdminDeniedNotice  = "You must have an Admin role to view and manage users."
)

// View is a renderable section. Content is a read-only mock dataset and is
// nil whenever Denied is set.
type View struct {
	ID          ViewID `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Role        Role   `json:"role,omitempty"`
	Denied      bool   `json:"denied"`
	Notice      string `json:"notice,omitempty"`
	Content     any    `json:"content,omitempty"`
}

// DeniedView builds the denial marker substituted for a restricted view.
func DeniedView(id ViewID, title string, role Role) *View {
	notice := AccessDeniedNotice
	if id == ViewAdmin {
		notice = AdminDeniedNotice
	}
	return &View{
		ID:     id,
		Title:  title,
		Role:   role,
		Denied: true,
		Notice: AccessDeniedTitle + ": " + notice,
	}
}
