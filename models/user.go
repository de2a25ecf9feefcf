package models

// Profile holds the descriptive data a user presents to others.
// It stays nil on the User until profile setup completes.
type Profile struct {
	Name               string   `json:"name"`
	Surname            string   `json:"surname"`
	Interests          []string `json:"interests"`
	LookingFor         string   `json:"lookingFor"`
	University         string   `json:"university"`
	StudyField         string   `json:"studyField"`
	Bio                string   `json:"bio"`
	Age                int      `json:"age,omitempty"`
	Gender             string   `json:"gender"`
	CommunicationStyle string   `json:"communicationStyle"`
	LoveLanguage       string   `json:"loveLanguage"`
	StarSign           string   `json:"starSign"`
	Photos             []string `json:"photos"`
	PhotoKeys          []string `json:"photoKeys,omitempty"`
}

// User is one registered account, keyed by university email address.
// Matches is symmetric: if A lists B, B lists A. Only the like engine
// mutates it, through UserDirectory.AddMatch.
type User struct {
	Email        string   `json:"email"`
	PasswordHash []byte   `json:"-"`
	Profile      *Profile `json:"profile,omitempty"`
	Matches      []string `json:"matches"`
}

// ProfileView is a profile as served to other users, with the owner's
// email flattened in and photo URLs freshly presigned.
type ProfileView struct {
	Email string `json:"email"`
	Profile
}
