package synonym

// table maps a canonical English term to its equivalents in French,
// Arabic, and informal English. The data is deliberately kept apart from
// the expansion logic so it can be extended or localized independently.
//
// Expansion treats every entry as a closure: matching any member pulls
// in the key and all of its siblings.
var table = map[string][]string{
	// Garments
	"dress":    {"robe", "فستان", "فساتين", "gown"},
	"shirt":    {"chemise", "قميص", "tee", "t-shirt", "tshirt"},
	"pants":    {"pantalon", "بنطلون", "بنطال", "trousers"},
	"shorts":   {"short", "شورت"},
	"skirt":    {"jupe", "تنورة", "تنوره"},
	"jacket":   {"veste", "جاكيت", "blouson"},
	"coat":     {"manteau", "معطف"},
	"sweater":  {"pull", "سترة", "jumper"},
	"hoodie":   {"sweat", "هودي", "sweatshirt"},
	"pajamas":  {"pyjama", "بيجاما", "pjs"},
	"shoes":    {"chaussures", "حذاء", "أحذية", "sneakers", "baskets"},
	"socks":    {"chaussettes", "جوارب"},
	"hat":      {"chapeau", "قبعة", "cap", "bonnet"},
	"swimsuit": {"maillot", "مايوه", "swimwear"},

	// Fabrics
	"cotton":  {"coton", "قطن", "قطني"},
	"wool":    {"laine", "صوف", "صوفي"},
	"silk":    {"soie", "حرير"},
	"denim":   {"jean", "جينز", "jeans"},
	"leather": {"cuir", "جلد"},
	"linen":   {"lin", "كتان"},

	// Colors
	"red":    {"rouge", "أحمر", "حمراء"},
	"blue":   {"bleu", "bleue", "أزرق", "زرقاء"},
	"green":  {"vert", "verte", "أخضر", "خضراء"},
	"yellow": {"jaune", "أصفر", "صفراء"},
	"pink":   {"rose", "وردي", "زهري"},
	"white":  {"blanc", "blanche", "أبيض", "بيضاء"},
	"black":  {"noir", "noire", "أسود", "سوداء"},
	"beige":  {"beige", "بيج"},

	// Patterns
	"floral":  {"fleuri", "fleurie", "مورد", "flowers"},
	"striped": {"raye", "rayures", "مقلم", "stripes"},
	"dotted":  {"pois", "منقط", "polka"},
	"plain":   {"uni", "unie", "سادة"},

	// Demographics
	"boy":   {"garcon", "ولد", "أولاد", "boys"},
	"girl":  {"fille", "بنت", "بنات", "girls"},
	"baby":  {"bebe", "رضيع", "رضع", "infant", "newborn"},
	"kids":  {"enfant", "enfants", "أطفال", "children", "child"},

	// Occasions
	"party":   {"fete", "حفلة", "celebration"},
	"school":  {"ecole", "مدرسة", "مدرسه"},
	"sport":   {"sportif", "رياضة", "رياضي", "sports"},
	"wedding": {"mariage", "زفاف", "عرس"},
	"eid":     {"aid", "عيد"},

	// Seasons
	"summer": {"ete", "صيف", "صيفي"},
	"winter": {"hiver", "شتاء", "شتوي"},
	"spring": {"printemps", "ربيع", "ربيعي"},
	"autumn": {"automne", "خريف", "fall"},
}
