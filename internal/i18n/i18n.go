// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package i18n localizes the interface strings. Four locales are supported:
// English, Hindi, Tamil, and Bengali, with English as the fallback for
// unknown tags and untranslated keys.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Supported locales in preference order; the first is the fallback.
var supported = []language.Tag{
	language.English,
	language.Hindi,
	language.Tamil,
	language.Bengali,
}

var matcher = language.NewMatcher(supported)

// T translates interface strings for one locale.
type T struct {
	printer *message.Printer
	tag     language.Tag
}

// New resolves a BCP 47 locale string ("en", "hi", "ta", "bn") to a
// translator. Unknown or malformed tags fall back to English.
func New(locale string) *T {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	matched, _, _ := matcher.Match(tag)
	return &T{
		printer: message.NewPrinter(matched, message.Catalog(translations)),
		tag:     matched,
	}
}

// Tag returns the resolved locale.
func (t *T) Tag() language.Tag {
	return t.tag
}

// S translates a key. Untranslated keys render as the English source text.
func (t *T) S(key string) string {
	return t.printer.Sprintf(key)
}

// F translates a key with arguments.
func (t *T) F(key string, args ...any) string {
	return t.printer.Sprintf(key, args...)
}

// translations is the built-in message catalog.
var translations = func() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))

	set := func(tag language.Tag, entries map[string]string) {
		for key, msg := range entries {
			b.SetString(tag, key, msg)
		}
	}

	set(language.English, map[string]string{
		"app.title":           "JanAccess AI",
		"app.tagline":         "Your guide to government schemes and services",
		"tab.chat":            "AI Assistant",
		"tab.eligibility":     "Eligibility",
		"tab.documents":       "Document Help",
		"tab.skills":          "Skills & Jobs",
		"tab.about":           "About",
		"chat.placeholder":    "Ask about any government scheme...",
		"chat.thinking":       "Thinking...",
		"chat.suggestions":    "Suggestions",
		"chat.quick_actions":  "Quick Actions",
		"voice.hold":          "Recording... press again to send",
		"voice.processing":    "Processing audio...",
		"home.choose_persona": "Who are you? Pick one for personalized help",
		"home.skip":           "Continue without a persona",
		"eligibility.title":   "Check Your Eligibility",
		"eligibility.age":     "Age",
		"eligibility.income":  "Annual Income (₹)",
		"eligibility.category": "Category",
		"eligibility.location": "State / Location",
		"eligibility.submit":  "Check Eligibility",
		"documents.title":     "Simplify a Document",
		"documents.prompt":    "Upload a .txt or .pdf government document",
		"skills.title":        "Skills & Job Recommendations",
		"skills.education":    "Education Level",
		"skills.interest":     "Area of Interest",
		"skills.location":     "Preferred Location",
		"skills.submit":       "Get Recommendations",
		"status.low_bandwidth": "low bandwidth",
		"status.persona":      "persona",
	})

	set(language.Hindi, map[string]string{
		"app.title":           "जनएक्सेस AI",
		"app.tagline":         "सरकारी योजनाओं और सेवाओं के लिए आपका मार्गदर्शक",
		"tab.chat":            "AI सहायक",
		"tab.eligibility":     "पात्रता",
		"tab.documents":       "दस्तावेज़ सहायता",
		"tab.skills":          "कौशल और नौकरियां",
		"tab.about":           "परिचय",
		"chat.placeholder":    "किसी भी सरकारी योजना के बारे में पूछें...",
		"chat.thinking":       "सोच रहा है...",
		"chat.suggestions":    "सुझाव",
		"chat.quick_actions":  "त्वरित कार्य",
		"voice.hold":          "रिकॉर्डिंग... भेजने के लिए फिर दबाएं",
		"voice.processing":    "ऑडियो संसाधित हो रहा है...",
		"home.choose_persona": "आप कौन हैं? व्यक्तिगत सहायता के लिए चुनें",
		"home.skip":           "बिना चुने आगे बढ़ें",
		"eligibility.title":   "अपनी पात्रता जांचें",
		"eligibility.age":     "आयु",
		"eligibility.income":  "वार्षिक आय (₹)",
		"eligibility.category": "श्रेणी",
		"eligibility.location": "राज्य / स्थान",
		"eligibility.submit":  "पात्रता जांचें",
		"documents.title":     "दस्तावेज़ सरल करें",
		"documents.prompt":    ".txt या .pdf सरकारी दस्तावेज़ अपलोड करें",
		"skills.title":        "कौशल और नौकरी सिफारिशें",
		"skills.education":    "शिक्षा स्तर",
		"skills.interest":     "रुचि का क्षेत्र",
		"skills.location":     "पसंदीदा स्थान",
		"skills.submit":       "सिफारिशें प्राप्त करें",
		"status.low_bandwidth": "कम बैंडविड्थ",
		"status.persona":      "भूमिका",
	})

	set(language.Tamil, map[string]string{
		"app.title":           "ஜன்அக்சஸ் AI",
		"app.tagline":         "அரசு திட்டங்கள் மற்றும் சேவைகளுக்கான உங்கள் வழிகாட்டி",
		"tab.chat":            "AI உதவியாளர்",
		"tab.eligibility":     "தகுதி",
		"tab.documents":       "ஆவண உதவி",
		"tab.skills":          "திறன்கள் & வேலைகள்",
		"tab.about":           "பற்றி",
		"chat.placeholder":    "எந்த அரசு திட்டத்தைப் பற்றியும் கேளுங்கள்...",
		"chat.thinking":       "சிந்திக்கிறது...",
		"chat.suggestions":    "பரிந்துரைகள்",
		"chat.quick_actions":  "விரைவு செயல்கள்",
		"eligibility.title":   "உங்கள் தகுதியைச் சரிபார்க்கவும்",
		"eligibility.submit":  "தகுதியைச் சரிபார்",
		"documents.title":     "ஆவணத்தை எளிமைப்படுத்து",
		"skills.title":        "திறன் & வேலை பரிந்துரைகள்",
		"skills.submit":       "பரிந்துரைகளைப் பெறு",
	})

	set(language.Bengali, map[string]string{
		"app.title":           "জনঅ্যাক্সেস AI",
		"app.tagline":         "সরকারি প্রকল্প ও পরিষেবার জন্য আপনার সহায়ক",
		"tab.chat":            "AI সহায়ক",
		"tab.eligibility":     "যোগ্যতা",
		"tab.documents":       "নথি সহায়তা",
		"tab.skills":          "দক্ষতা ও চাকরি",
		"tab.about":           "পরিচিতি",
		"chat.placeholder":    "যেকোনো সরকারি প্রকল্প সম্পর্কে জিজ্ঞাসা করুন...",
		"chat.thinking":       "ভাবছে...",
		"chat.suggestions":    "পরামর্শ",
		"chat.quick_actions":  "দ্রুত কাজ",
		"eligibility.title":   "আপনার যোগ্যতা যাচাই করুন",
		"eligibility.submit":  "যোগ্যতা যাচাই",
		"documents.title":     "নথি সহজ করুন",
		"skills.title":        "দক্ষতা ও চাকরির পরামর্শ",
		"skills.submit":       "পরামর্শ নিন",
	})

	return b
}()
