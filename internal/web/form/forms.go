package form

// MovieForm carries the index/edit form fields. Length limits are
// checked by the service, not by binding tags, so that every failure
// funnels into the same flash-then-redirect path.
type MovieForm struct {
	Title string `form:"title"`
	Year  string `form:"year"`
}

// LoginForm carries the login form fields.
type LoginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// SettingsForm carries the settings form fields.
type SettingsForm struct {
	Name string `form:"name"`
}
