package entities

type User struct {
	ID             string   `json:"id"`
	Username       string   `json:"username"`
	Email          string   `json:"email"`
	ProfilePicture string   `json:"profilePicture,omitempty"`
	Bio            string   `json:"bio,omitempty"`
	Skills         []string `json:"skills"`
	Experience     string   `json:"experience"`
	Location       string   `json:"location,omitempty"`
	Resume         string   `json:"resume,omitempty"`
}
