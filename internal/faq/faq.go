// Package faq holds the static FAQ content for Nepal and Sri Lanka.
package faq

// Item is an immutable question/answer pair.
type Item struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Items returns the FAQ list in a stable order. Callers get a fresh slice so
// the backing data stays immutable.
func Items() []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

var items = []Item{
	// Nepal basics
	{
		Question: "What is the capital of Nepal?",
		Answer:   "The capital city of Nepal is Kathmandu. It is famous for its historic temples, Durbar Squares, and vibrant cultural life.",
	},
	{
		Question: "What is the official language of Nepal?",
		Answer:   "The official language of Nepal is Nepali. It is written in the Devanagari script and is spoken across the country alongside many regional languages.",
	},
	{
		Question: "Which mountains are in Nepal?",
		Answer:   "Nepal is home to the Himalayan mountain range, including Mount Everest (Sagarmatha), the world's highest peak, as well as Annapurna, Manaslu, and many others.",
	},
	{
		Question: "What is Dashain festival in Nepal?",
		Answer:   "Dashain is Nepal's biggest festival, celebrating the victory of good over evil. Families gather, receive tika and jamara from elders, and enjoy special foods and traditions.",
	},
	{
		Question: "What is Tihar festival?",
		Answer:   "Tihar, also known as Deepawali, is the festival of lights in Nepal. It honours crows, dogs, cows, and Laxmi, the goddess of wealth, with lamps, rangoli, and family celebrations.",
	},
	{
		Question: "Which currency is used in Nepal?",
		Answer:   "Nepal uses the Nepalese Rupee (NPR) as its official currency.",
	},
	{
		Question: "What is the major religion in Nepal?",
		Answer:   "Hinduism is the majority religion in Nepal, followed by Buddhism. The two traditions are closely linked in culture and daily life.",
	},
	{
		Question: "What are some famous places to visit in Nepal?",
		Answer:   "Popular destinations include Kathmandu Valley, Pokhara, Chitwan National Park, Lumbini (the birthplace of Buddha), and trekking regions like Everest and Annapurna.",
	},

	// Sri Lanka basics
	{
		Question: "What is the capital of Sri Lanka?",
		Answer:   "Sri Lanka has two capitals: Sri Jayawardenepura Kotte as the official administrative capital, and Colombo as the commercial capital.",
	},
	{
		Question: "What is the national flower of Sri Lanka?",
		Answer:   "The national flower of Sri Lanka is the Blue Water Lily (Nymphaea nouchali), known locally as Nil Manel.",
	},
	{
		Question: "Which languages are official in Sri Lanka?",
		Answer:   "Sri Lanka has two official languages: Sinhala and Tamil. English is widely used as a link language in administration, education, and business.",
	},
	{
		Question: "What is Vesak in Sri Lanka?",
		Answer:   "Vesak is a major Buddhist festival marking the birth, enlightenment, and passing away (Parinirvana) of the Buddha. Streets and homes are decorated with lanterns and pandals.",
	},
	{
		Question: "What is the currency of Sri Lanka?",
		Answer:   "Sri Lanka uses the Sri Lankan Rupee (LKR) as its official currency.",
	},
	{
		Question: "What are popular tourist spots in Sri Lanka?",
		Answer:   "Key attractions include Sigiriya Rock Fortress, Kandy, Ella, Galle, Yala National Park, and the coastal beaches like Mirissa and Unawatuna.",
	},
	{
		Question: "What is typical Sri Lankan food?",
		Answer:   "Rice and curry is the staple, often served with dhal, vegetables, sambols, and sometimes fish or meat. Popular dishes include string hoppers, kottu, and hoppers (appa).",
	},
	{
		Question: "Which religions are followed in Sri Lanka?",
		Answer:   "Buddhism is the majority religion, followed by Hinduism, Islam, and Christianity. Religious festivals from all communities are celebrated throughout the year.",
	},

	// Nepal–Sri Lanka comparison & travel
	{
		Question: "How are Nepal and Sri Lanka different in geography?",
		Answer:   "Nepal is a landlocked, mountainous country dominated by the Himalayas, while Sri Lanka is an island nation in the Indian Ocean with coastal plains and central highlands.",
	},
	{
		Question: "Which time zone do Nepal and Sri Lanka use?",
		Answer:   "Nepal uses Nepal Time (UTC+5:45). Sri Lanka uses Sri Lanka Standard Time (UTC+5:30).",
	},
	{
		Question: "Is it safe to travel to Nepal and Sri Lanka?",
		Answer:   "Both Nepal and Sri Lanka are generally safe for tourists if you follow normal travel precautions, respect local customs, and keep updated through official advisories.",
	},
	{
		Question: "Do I need a visa to visit Nepal or Sri Lanka?",
		Answer:   "Many visitors need a visa for both countries, often available on arrival or through an e-visa system. Always check the latest official requirements before travelling.",
	},

	// Culture & history extras
	{
		Question: "What is Lumbini famous for?",
		Answer:   "Lumbini in Nepal is famous as the birthplace of Siddhartha Gautama, who became the Buddha. It is a UNESCO World Heritage Site with monasteries and a sacred garden.",
	},
	{
		Question: "Why is Kandy important in Sri Lanka?",
		Answer:   "Kandy is culturally important because it hosts the Temple of the Tooth Relic (Sri Dalada Maligawa), one of the most sacred Buddhist sites in Sri Lanka.",
	},
	{
		Question: "What is special about Nepali and Sinhala New Year?",
		Answer:   "Both Nepali New Year (around mid-April) and Sinhala and Tamil New Year in Sri Lanka celebrate the agricultural cycle with family gatherings, food, games, and rituals.",
	},
	{
		Question: "Can people speak English in Nepal and Sri Lanka?",
		Answer:   "Yes. While local languages dominate daily life, many people in cities, tourism, and education can communicate in English in both countries.",
	},
}
