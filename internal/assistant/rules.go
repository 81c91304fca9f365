package assistant

import (
	"fmt"
	"strings"
)

// Age group labels used by the dosage advisor.
const (
	GroupInfant   = "Infant"
	GroupToddler  = "Toddler"
	GroupChild    = "Child"
	GroupTeenager = "Teenager"
	GroupAdult    = "Adult"
	GroupElderly  = "Elderly"
)

// dosageAdvice maps each age group to its advisory text.
var dosageAdvice = map[string]string{
	GroupInfant:   "Consult pediatrician. Liquid form only. Usually measured in drops or ml.",
	GroupToddler:  "1/4 of adult dose or syrup-based.",
	GroupChild:    "1/2 of adult dose. Avoid strong antibiotics unless prescribed.",
	GroupTeenager: "3/4 or full adult dose depending on weight.",
	GroupAdult:    "Full dose (usually 1 tablet every 6-8 hours).",
	GroupElderly:  "Start with 1/2 dose. Monitor kidney/liver health.",
}

// symptomRule matches any of its symptoms against the patient's complaint
// list and contributes a single medicine.
type symptomRule struct {
	symptoms []string
	medicine string
}

// Rules are checked in order so recommendations come back in a stable order.
var symptomRules = []symptomRule{
	{symptoms: []string{"fever"}, medicine: "Paracetamol"},
	{symptoms: []string{"headache"}, medicine: "Ibuprofen"},
	{symptoms: []string{"cold", "sore throat"}, medicine: "Cough Syrup"},
	{symptoms: []string{"stomach pain"}, medicine: "Antacid"},
	{symptoms: []string{"vomiting"}, medicine: "Ondansetron"},
}

// summaryKeywords mark a sentence of doctor notes as a key instruction.
var summaryKeywords = []string{"twice", "daily", "week", "quantity", "overdose", "tablet", "syrup"}

// AgeGroup classifies a patient age into one of the six dosage brackets.
func AgeGroup(age int) string {
	switch {
	case age < 1:
		return GroupInfant
	case age <= 5:
		return GroupToddler
	case age <= 12:
		return GroupChild
	case age <= 18:
		return GroupTeenager
	case age <= 60:
		return GroupAdult
	default:
		return GroupElderly
	}
}

// SuggestDosage returns the age group and advisory text for the medicine.
func SuggestDosage(medicine string, age int) (*DosageResponse, error) {
	medicine = strings.TrimSpace(medicine)
	if medicine == "" {
		return nil, ErrMissingMedicine
	}
	if age < 0 || age > 120 {
		return nil, ErrInvalidAge
	}

	group := AgeGroup(age)
	return &DosageResponse{
		Success:  true,
		Medicine: medicine,
		AgeGroup: group,
		Advice:   fmt.Sprintf("%s for %s: %s", medicine, group, dosageAdvice[group]),
	}, nil
}

// RecommendMedicines matches a comma-separated symptom list against the
// symptom rules. Matching is case-insensitive and each medicine appears at
// most once. When nothing matches, the response says so explicitly.
func RecommendMedicines(symptoms string) (*RecommendResponse, error) {
	if strings.TrimSpace(symptoms) == "" {
		return nil, ErrMissingSymptoms
	}

	present := make(map[string]bool)
	for _, s := range strings.Split(symptoms, ",") {
		present[strings.ToLower(strings.TrimSpace(s))] = true
	}

	var recommendations []string
	seen := make(map[string]bool)
	for _, rule := range symptomRules {
		for _, symptom := range rule.symptoms {
			if present[symptom] && !seen[rule.medicine] {
				recommendations = append(recommendations, rule.medicine)
				seen[rule.medicine] = true
				break
			}
		}
	}

	if len(recommendations) == 0 {
		return &RecommendResponse{
			Success:         true,
			Recommendations: []string{},
			Message:         "No specific recommendations found. Refer to a doctor.",
		}, nil
	}

	return &RecommendResponse{
		Success:         true,
		Recommendations: recommendations,
	}, nil
}

// SummarizeNotes keeps only the sentences of the notes that carry a dosage
// keyword and rejoins them with ". ".
func SummarizeNotes(notes string) (*SummarizeResponse, error) {
	if strings.TrimSpace(notes) == "" {
		return nil, ErrMissingNotes
	}

	var kept []string
	for _, sentence := range strings.Split(notes, ".") {
		lower := strings.ToLower(sentence)
		for _, keyword := range summaryKeywords {
			if strings.Contains(lower, keyword) {
				kept = append(kept, sentence)
				break
			}
		}
	}

	summary := strings.TrimSpace(strings.Join(kept, ". "))
	if summary == "" {
		return &SummarizeResponse{
			Success: true,
			Summary: "",
			Message: "No key instructions found. Please check the note.",
		}, nil
	}

	return &SummarizeResponse{
		Success: true,
		Summary: summary,
	}, nil
}
