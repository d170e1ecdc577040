// Package aspects tags review text with the fixed aspect set via
// multilingual keyword matching.
package aspects

import "github.com/tulna-ai/tulna/internal/models"

// aspectKeywords is built once at process start and read concurrently
// without synchronization; it is never mutated after init. Keywords are
// stored lower-cased, matching is substring containment.
var aspectKeywords = map[models.Aspect][]string{
	models.AspectCamera: {
		"कैमरा", "camera", "फोटो", "photo", "पिक्चर", "picture",
		"कॅमेरा", "चित्र", "selfie", "video",
	},
	models.AspectBattery: {
		"बैटरी", "battery", "बैकअप", "backup", "चार्जिंग", "charging",
		"charge", "power", "बॅटरी",
	},
	models.AspectPerformance: {
		"परफॉर्मेंस", "performance", "स्पीड", "speed", "तेज", "fast",
		"slow", "lag", "gaming", "processor", "ram", "परफॉर्मन्स",
	},
	models.AspectDisplay: {
		"डिस्प्ले", "display", "स्क्रीन", "screen", "आकार", "size",
		"brightness", "color", "clarity", "डिस्पले",
	},
	models.AspectValue: {
		"कीमत", "price", "दाम", "पैसा", "value", "money", "worth",
		"महाग", "किंमत", "costly", "cheap",
	},
	models.AspectBuildQuality: {
		"बिल्ड", "build", "quality", "design", "डिज़ाइन", "look",
		"body", "material", "finish", "गुणवत्ता",
	},
}

// Keywords returns the keyword list for an aspect.
func Keywords(aspect models.Aspect) []string {
	return aspectKeywords[aspect]
}
