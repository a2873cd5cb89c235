package mock

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"carelink/internal/eligibility/models"
)

// Selector offsets per coverage field. Each field gets its own offset so the
// fields vary independently across seeds.
const (
	offsetPlanType     = 0
	offsetPlanName     = 1
	offsetCopayPrimary = 2
	offsetCopaySpec    = 3
	offsetCopayUrgent  = 4
	offsetCopayER      = 5
	offsetDedInd       = 6
	offsetDedFam       = 7
	offsetOOPInd       = 8
	offsetOOPFam       = 9
	offsetCoinsurance  = 10
	offsetSpouseName   = 20
	offsetErrorMessage = 100
)

// buildCoverage derives the full coverage record for a seed. All monetary
// fields are rendered as currency strings; consumers display them literally.
func buildCoverage(seed uint32, today time.Time) *models.Coverage {
	planType := pick(planTypes, seed, offsetPlanType)
	planName := pick(planNames[planType], seed, offsetPlanName)

	// Effective 1-3 years in the past.
	effectiveDate := today.AddDate(0, 0, -int(seed%1000+365))

	dedIndividual := pick(deductiblesIndividual, seed, offsetDedInd)
	dedFamily := pick(deductiblesFamily, seed, offsetDedFam)
	// 0-99% of the individual deductible already met, rounded to cents.
	dedMet := math.Round(float64(dedIndividual)*float64(seed%100)) / 100

	oopIndividual := pick(oopMaxIndividual, seed, offsetOOPInd)
	oopFamily := pick(oopMaxFamily, seed, offsetOOPFam)
	// 0-49% of the individual out-of-pocket max already met.
	oopMet := math.Round(float64(oopIndividual)*float64(seed%50)) / 100

	return &models.Coverage{
		EffectiveDate:        models.DateOf(effectiveDate).String(),
		PlanName:             planName,
		PlanType:             planType,
		CopayPrimaryCare:     currency(pick(copaysPrimaryCare, seed, offsetCopayPrimary)),
		CopaySpecialist:      currency(pick(copaysSpecialist, seed, offsetCopaySpec)),
		CopayUrgentCare:      currency(pick(copaysUrgentCare, seed, offsetCopayUrgent)),
		CopayEmergency:       currency(pick(copaysEmergency, seed, offsetCopayER)),
		DeductibleIndividual: currency(dedIndividual),
		DeductibleFamily:     currency(dedFamily),
		DeductibleMet:        currencyAmount(dedMet),
		OutOfPocketMax:       currency(oopIndividual),
		OutOfPocketMaxFamily: currency(oopFamily),
		OutOfPocketMet:       currencyAmount(oopMet),
		Coinsurance:          pick(coinsuranceRates, seed, offsetCoinsurance),
	}
}

const currencySymbol = "₸"

// currency renders a whole amount as a display string with thousands
// separators, e.g. 12500 -> "₸12,500".
func currency(amount int) string {
	return currencySymbol + groupThousands(strconv.Itoa(amount))
}

// currencyAmount renders a fractional amount rounded to the nearest whole
// unit for display, matching how met amounts are presented.
func currencyAmount(amount float64) string {
	return currencySymbol + groupThousands(fmt.Sprintf("%.0f", amount))
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	out := make([]byte, 0, n+n/3)
	lead := n % 3
	if lead > 0 {
		out = append(out, digits[:lead]...)
	}
	for i := lead; i < n; i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, digits[i:i+3]...)
	}
	return string(out)
}
