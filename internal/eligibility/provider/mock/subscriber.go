package mock

import (
	"carelink/internal/eligibility/models"
)

// Relationship distribution over seed%100: 70% Self, 20% Spouse, 10% Child.
const (
	spouseRollFloor = 70
	childRollFloor  = 90
)

// buildSubscriber derives subscriber identity from the seed and patient name.
// Spouses get a roster-picked first name with the patient's last name; Self
// and Child both carry the patient's own name.
func buildSubscriber(seed uint32, memberID, patientFirstName, patientLastName string) *models.Subscriber {
	roll := seed % 100

	var relationship, name string
	switch {
	case roll < spouseRollFloor:
		relationship = "Self"
		name = patientFirstName + " " + patientLastName
	case roll < childRollFloor:
		relationship = "Spouse"
		name = pick(firstNames, seed, offsetSpouseName) + " " + patientLastName
	default:
		relationship = "Child"
		name = patientFirstName + " " + patientLastName
	}

	return &models.Subscriber{
		Name:         name,
		Relationship: relationship,
		MemberID:     memberID,
	}
}
