package models

// UserProfile represents the single display profile of the device
type UserProfile struct {
	SchoolName string `json:"schoolName"`
	Name       string `json:"name"`
	StudentID  string `json:"studentId"`
}
