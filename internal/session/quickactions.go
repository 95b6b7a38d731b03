// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

// QuickAction is a suggested prompt: a short labeled button that expands to
// a full query when selected.
type QuickAction struct {
	Label string
	Query string
}

// Persona names, in display order.
const (
	PersonaFarmer          = "Farmer"
	PersonaStudent         = "Student"
	PersonaJobSeeker       = "Job Seeker"
	PersonaBusinessOwner   = "Small Business Owner"
	PersonaSeniorCitizen   = "Senior Citizen"
	PersonaDifferentlyAble = "Differently Abled"
)

// Personas returns the built-in persona list, used when the backend's
// persona-options endpoint is unavailable.
func Personas() []string {
	return []string{
		PersonaFarmer,
		PersonaStudent,
		PersonaJobSeeker,
		PersonaBusinessOwner,
		PersonaSeniorCitizen,
		PersonaDifferentlyAble,
	}
}

// personaQuickActions maps each persona to its suggested prompts.
var personaQuickActions = map[string][]QuickAction{
	PersonaFarmer: {
		{Label: "🌾 Crop Subsidy", Query: "What crop subsidies are available for farmers?"},
		{Label: "📊 Mandi Prices", Query: "Show me the latest mandi prices for crops."},
		{Label: "🌧️ Crop Insurance", Query: "How do I apply for crop insurance?"},
		{Label: "💰 PM-KISAN", Query: "Tell me about PM-KISAN income support scheme."},
	},
	PersonaStudent: {
		{Label: "🎓 Scholarships", Query: "What scholarships are available for students?"},
		{Label: "📚 Skill Courses", Query: "Show me free government skill courses."},
		{Label: "🏦 Education Loans", Query: "How to apply for an education loan?"},
		{Label: "📝 Exam Guidance", Query: "Guide me on government competitive exams."},
	},
	PersonaJobSeeker: {
		{Label: "🏛️ Govt Jobs", Query: "What government jobs are open right now?"},
		{Label: "📄 Resume Help", Query: "Help me build a strong resume."},
		{Label: "🛠️ Skill Training", Query: "What free skill training programs are available?"},
		{Label: "💼 Placement", Query: "How to register on employment exchanges?"},
	},
	PersonaBusinessOwner: {
		{Label: "🏦 MUDRA Loan", Query: "How to apply for a MUDRA loan?"},
		{Label: "📋 MSME Register", Query: "How do I register my business as MSME?"},
		{Label: "💡 Startup India", Query: "Tell me about Startup India benefits."},
		{Label: "📱 Digital Payments", Query: "How to adopt digital payments for my shop?"},
	},
	PersonaSeniorCitizen: {
		{Label: "🏥 Health Cover", Query: "What health insurance is available for senior citizens?"},
		{Label: "💰 Pension Schemes", Query: "Tell me about pension schemes for seniors."},
		{Label: "🏦 Savings Schemes", Query: "What savings schemes are best for senior citizens?"},
		{Label: "📞 Elder Helpline", Query: "What helplines are available for senior citizens?"},
	},
	PersonaDifferentlyAble: {
		{Label: "🆔 UDID Card", Query: "How do I apply for a UDID disability card?"},
		{Label: "💰 Disability Pension", Query: "What disability pension schemes are available?"},
		{Label: "🦽 Assistive Devices", Query: "How to get free assistive devices from the government?"},
		{Label: "💼 Job Reservation", Query: "What job reservations exist for differently abled persons?"},
	},
}

// defaultSuggestions are shown when no persona is selected or the persona is
// unknown. Label and query are the same text.
var defaultSuggestions = []string{
	"How to apply for PMAY?",
	"Scholarships for SC students",
	"Free health insurance schemes",
	"Skill training programs near me",
}

// DefaultSuggestions returns the generic prompt suggestions.
func DefaultSuggestions() []QuickAction {
	out := make([]QuickAction, len(defaultSuggestions))
	for i, q := range defaultSuggestions {
		out[i] = QuickAction{Label: q, Query: q}
	}
	return out
}

// QuickActionsFor returns the quick actions for a persona, falling back to
// the generic suggestions for "" or an unknown name. Never returns an empty
// list.
func QuickActionsFor(persona string) []string {
	actions, ok := personaQuickActions[persona]
	if !ok {
		queries := make([]string, len(defaultSuggestions))
		copy(queries, defaultSuggestions)
		return queries
	}
	queries := make([]string, len(actions))
	for i, a := range actions {
		queries[i] = a.Query
	}
	return queries
}

// LabeledQuickActionsFor is QuickActionsFor with labels preserved.
func LabeledQuickActionsFor(persona string) []QuickAction {
	if actions, ok := personaQuickActions[persona]; ok {
		out := make([]QuickAction, len(actions))
		copy(out, actions)
		return out
	}
	return DefaultSuggestions()
}
