// Package prompt builds system prompts for the chatbot and selects which
// local model serves each conversation mode.
package prompt

import (
	"strings"

	"github.com/transly-team/transly/internal/lang"
)

// Mode selects the chatbot behavior.
type Mode string

const (
	ModeHistoryCulture Mode = "history_culture"
	ModeTravel         Mode = "travel"
	ModeSummarize      Mode = "summarize"
	ModeSentiment      Mode = "sentiment"
	ModeGeneral        Mode = "general"
)

// Model identifiers served by the local Ollama instance.
const (
	ModelGemma = "gemma:2b"
	ModelQwen  = "qwen2:1.5b"
)

// NormalizeMode lowercases m and folds anything unrecognized to general.
func NormalizeMode(m string) Mode {
	switch Mode(strings.ToLower(strings.TrimSpace(m))) {
	case ModeHistoryCulture:
		return ModeHistoryCulture
	case ModeTravel:
		return ModeTravel
	case ModeSummarize:
		return ModeSummarize
	case ModeSentiment:
		return ModeSentiment
	default:
		return ModeGeneral
	}
}

// ChooseModel maps a mode to the model that serves it. Factual and
// descriptive modes go to gemma, structured tasks and everything else to qwen.
func ChooseModel(m Mode) string {
	switch m {
	case ModeHistoryCulture, ModeTravel:
		return ModelGemma
	case ModeSummarize, ModeSentiment:
		return ModelQwen
	default:
		return ModelQwen
	}
}

// factsPreamble is prepended to every system prompt. The models are small and
// hallucinate on current affairs, so the answers for these facts are pinned.
const factsPreamble = "You MUST use these FACTS to answer questions. These are the ONLY correct answers:\n" +
	"NEPAL: Current PM = Prachanda, Capital = Kathmandu, Currency = NPR\n" +
	"SRI LANKA: Current President = Anura Kumara Dissanayake, Capital = Colombo, Currency = LKR\n" +
	"When asked about these, ALWAYS respond with the facts above. Never say you don't know or can't answer.\n" +
	"Answer the question directly. Do not give generic greetings or preambles.\n\n"

// languageDirectives instruct the model which language to answer in.
var languageDirectives = map[lang.Tag]string{
	lang.TagEnglish: "Always respond in clear English.\n\n",
	lang.TagNepali:  "Always respond in clear Nepali (Devanagari script).\n\n",
	lang.TagSinhala: "Always respond in clear Sinhala script.\n\n",
}

const mirrorDirective = "Detect the language of the user's message and respond in that same language, " +
	"unless they explicitly request another language.\n\n"

// templates holds the mode-specific instruction per mode and language.
// Missing combinations fall back to the English template of the mode.
var templates = map[Mode]map[lang.Tag]string{
	ModeHistoryCulture: {
		lang.TagEnglish: "Answer questions about Nepal and Sri Lanka using the facts provided.\n" +
			"FACTS: Nepal PM=Prachanda, Capital=Kathmandu, Currency=NPR. Sri Lanka Pres=Dissanayake, Capital=Colombo, Currency=LKR.\n" +
			"MUST use these facts. Answer directly, no generic greetings.",
		lang.TagNepali: "नेपाल र श्रीलंका को बारे मा सवाल को सीधा जवाब दिनुहोस्।\n" +
			"तथ्य: नेपाल PM=प्रचण्ड, राजधानी=काठमाडौँ। Sri Lanka Pres=Dissanayake, Capital=Colombo।\n" +
			"यी तथ्य को प्रयोग गर्नु MUST। सामान्य अभिवादन गर्नुस्नु।",
		lang.TagSinhala: "සෙවින පිළිතුරු දෙන්න. කිසිවිට සාමාන්‍ය ප්‍රශ්නයක් ඉතිරි කරන්න.\n" +
			"නේපාල PM=ප්‍රචණ්ඩ, ප්‍රධාන නගරය=කටුමාඩු, මුද්‍රා=NPR.\n" +
			"ශ්‍රී ලංකා Pres=ධිසනායක, ප්‍රධාන නගරය=කොළඹ.\n" +
			"ප්‍රශ්නයට සෙවින පිළිතුරු දෙන්න.",
	},
	ModeTravel: {
		lang.TagEnglish: "Travel advice for travel, hotels, attractions.\n" +
			"If asked facts about Nepal/Sri Lanka - answer directly, NOT travel advice.\n" +
			"Facts: Nepal PM=Prachanda, Capital=Kathmandu. Sri Lanka Pres=Dissanayake, Capital=Colombo.",
		lang.TagNepali: "यात्रा सल्लाह - यात्रा, होटल, आकर्षण को लागि।\n" +
			"यदि नेपाल/लंका तथ्य सवाल छ भने सीधा जवाफ दिनुहोस्।\n" +
			"PM र राजधानी: नेपाल PM=प्रचण्ड, राजधानी=काठमाडौँ; Sri Lanka Pres=Dissanayake, Capital=Colombo।",
		lang.TagSinhala: "ගමනාගමන උපදෙස් - ගමනාගමන, හෝටල්, ස්ථාන පිළිබඳ.\n" +
			"නේපාල/ශ්‍රී ලංකා තථ්‍ය ගැන ඇසුවහොත් සෙවින පිළිතුරු දෙන්න.\n" +
			"PM සහ ප්‍රධාන නගර: නේපාල PM=ප්‍රචණ්ඩ, ප්‍රධාන නගරය=කටුමාඩු; Pres=Dissanayake, Capital=Colombo.",
	},
	ModeSummarize: {
		lang.TagEnglish: "Summarize the following text concisely. Extract main points and express them briefly in 3-6 sentences.",
		lang.TagNepali:  "निम्नलिखित पाठ को नेपालीमा सारांश गर्नुहोस्। मुख्य बिंदु को छोटो रुप मा व्यक्त गर्नुहोस्।",
		lang.TagSinhala: "පහත ඔබ පෙළ සිංහල භාෂාවෙන් සාරාංශ කරන්න. ප්‍රධාන කරුණු කෙටි ස්වරූපයෙන් ප්‍රකාශ කරන්න.",
	},
	ModeSentiment: {
		lang.TagEnglish: "Analyze the sentiment of the following text. Determine if it is positive, negative, or neutral. \n" +
			"Output format: 'Sentiment: [Positive/Negative/Neutral]' followed by brief explanation.",
		lang.TagNepali:  "निम्नलिखित पाठको भावनात्मक स्थिति विश्लेषण गर्नुहोस्। यो सकारात्मक, नकारात्मक वा तटस्थ हो भनी बताउनुहोस्।",
		lang.TagSinhala: "පහත ඔබ පෙළේ බවිතයි විශ්ලේෂණය කරන්න. එය ධනාත්මක, ඍණාත්මක හෝ තුලනික දැයි කියන්න.",
	},
	ModeGeneral: {
		lang.TagEnglish: "Answer questions about Nepal and Sri Lanka factually.\n" +
			"FACTS: Nepal PM=Prachanda, Capital=Kathmandu, Currency=NPR. Sri Lanka Pres=Dissanayake, Capital=Colombo, Currency=LKR.\n" +
			"MUST use these facts when asked. Direct answers only.",
		lang.TagNepali: "नेपाल र श्रीलंका को बारे मा तथ्य आधारित उत्तर दिनुहोस्।\n" +
			"तथ्य: नेपाल PM=प्रचण्ड, राजधानी=काठमाडौँ। Pres=Dissanayake, Capital=Colombo।\n" +
			"सीधा जवाफ, कहिल्यै सामान्य अभिवादन नत।",
		lang.TagSinhala: "නේපාල සහ ශ්‍රී ලංකා ගැන තථ්‍ය පිළිබඳ පිළිතුරු දෙන්න.\n" +
			"කරුණු: නේපාල PM=ප්‍රචණ්ඩ, ප්‍රධාන නගරය=කටුමාඩු। Pres=Dissanayake, Capital=Colombo.\n" +
			"සෙවින පිළිතුරු, සාමාන්‍ය ප්‍රශ්ණයක් නැත।",
	},
}

// BuildSystemPrompt composes the full system prompt for a mode and language:
// facts preamble, then the language directive, then the mode template. Every
// input normalizes to a valid combination, so it never fails.
func BuildSystemPrompt(mode Mode, language lang.Tag) string {
	var sb strings.Builder
	sb.WriteString(factsPreamble)

	if d, ok := languageDirectives[language]; ok {
		sb.WriteString(d)
	} else {
		sb.WriteString(mirrorDirective)
	}

	modeTemplates, ok := templates[mode]
	if !ok {
		modeTemplates = templates[ModeGeneral]
	}

	template, ok := modeTemplates[language]
	if !ok {
		template = modeTemplates[lang.TagEnglish]
	}

	sb.WriteString(template)
	sb.WriteString("\n")

	return sb.String()
}
