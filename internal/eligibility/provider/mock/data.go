package mock

// Static reference tables driving the simulated verification results. The
// tables are ordered: record generation indexes into them deterministically,
// so reordering entries changes every derived response.

// insurers is the roster returned by SupportedInsurers, in display order.
var insurers = []string{
	"Blue Cross Blue Shield",
	"Aetna",
	"UnitedHealthcare",
	"Cigna",
	"Humana",
	"Kaiser Permanente",
	"Anthem",
	"Molina Healthcare",
	"Centene",
	"Medicare",
	"Medicaid",
}

var planTypes = []string{"PPO", "HMO", "EPO", "POS", "HDHP"}

var planNames = map[string][]string{
	"PPO": {
		"PPO Gold 500",
		"PPO Silver 1000",
		"PPO Bronze 2500",
		"PPO Platinum 250",
		"PPO Standard",
		"PPO Plus",
	},
	"HMO": {
		"HMO Select",
		"HMO Basic",
		"HMO Premium",
		"HMO Community",
		"HMO Value",
	},
	"EPO": {
		"EPO Standard",
		"EPO Plus",
		"EPO Select",
	},
	"POS": {
		"POS Flex",
		"POS Choice",
		"POS Premier",
	},
	"HDHP": {
		"HDHP with HSA",
		"HDHP Bronze",
		"HDHP Silver",
	},
}

// Copay tiers per visit type.
var (
	copaysPrimaryCare = []int{20, 25, 30, 35, 40}
	copaysSpecialist  = []int{40, 50, 60, 75, 80}
	copaysUrgentCare  = []int{50, 75, 100, 125}
	copaysEmergency   = []int{150, 200, 250, 300, 350}
)

var (
	deductiblesIndividual = []int{250, 500, 750, 1000, 1500, 2000, 2500, 3000, 5000}
	deductiblesFamily     = []int{500, 1000, 1500, 2000, 3000, 4000, 5000, 6000, 10000}
)

var (
	oopMaxIndividual = []int{3000, 4000, 5000, 6000, 7000, 8000, 9000}
	oopMaxFamily     = []int{6000, 8000, 10000, 12000, 14000, 16000, 18000}
)

var coinsuranceRates = []string{"70%", "80%", "90%", "100%"}

// Error message pools keyed by simulated failure class.
var (
	notFoundMessages = []string{
		"Member not found in payer system",
		"No matching member record found",
		"Unable to locate member with provided information",
	}
	unavailableMessages = []string{
		"Payer system temporarily unavailable",
		"Connection timeout to payer",
		"Service maintenance in progress",
	}
)

// firstNames feeds spouse name generation.
var firstNames = []string{
	"James", "Mary", "John", "Patricia", "Robert", "Jennifer",
	"Michael", "Linda", "William", "Elizabeth", "David", "Barbara",
	"Richard", "Susan", "Joseph", "Jessica", "Thomas", "Sarah",
	"Charles", "Karen", "Christopher", "Nancy", "Daniel", "Lisa",
	"Matthew", "Betty", "Anthony", "Margaret", "Mark", "Sandra",
}
