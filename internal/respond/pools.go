package respond

// Response pools and keyword tables. Every category is an immutable ordered
// list so selection is a uniform index draw, and every keyword dispatch is an
// ordered rule slice evaluated first-match-wins. Keeping these as data keeps
// the classifiers auditable in isolation.

// rule pairs trigger terms with the pool they select. Terms match as
// substrings of the lowercased raw input.
type rule struct {
	terms []string
	pool  []string
}

// greetings are matched exactly against the trimmed lowercase input.
var greetings = map[string]struct{}{
	"hi": {}, "hello": {}, "hey": {}, "sup": {}, "yo": {}, "heya": {}, "hola": {},
}

var greetingReplies = []string{
	"Hey there friend! 😊 How are you doing today? Want to talk about something?",
	"Hi! 💙 I'm here for you. What's on your mind?",
	"Hey! So glad you're here. How are you feeling? Want to chat about anything?",
	"Hello friend! I'm all ears. What's going on with you?",
}

var thanksTerms = []string{"thank", "thanks", "thx", "appreciate"}

var thanksReplies = []string{
	"Aw, you're so welcome! 💚 I'm always here if you need me, okay?",
	"Of course! That's what friends are for. 😊 Take care!",
	"Anytime! Seriously, I'm here whenever you need to talk. 💙",
	"You got it! Remember, you're not alone in this. 💜",
}

var howAreYouTerms = []string{"how are you", "how r u", "hows it going"}

var howAreYouReplies = []string{
	"Thanks for asking! I'm here and ready to support you. More importantly though - how are YOU doing? 😊",
	"I'm good! But let's focus on you - how are you really feeling?",
	"I'm doing well! But I'm more interested in you. What's going on in your world?",
}

// openerRules select an affect-matched opener for confident answers, checked
// in priority order: loneliness, sadness, anxiety, anger.
var openerRules = []rule{
	{
		terms: []string{"lonely", "alone", "isolated", "no friends"},
		pool: []string{
			"I'm sorry you're feeling lonely. That really sucks. 💙 ",
			"Loneliness is so hard. I'm here with you. ",
			"Hey, you're not alone - I'm here. And here's what might help: ",
		},
	},
	{
		terms: []string{"sad", "depressed", "down", "hopeless"},
		pool: []string{
			"I hear you, and I'm really sorry you're feeling this way. 💙 ",
			"That sounds so heavy. I'm here for you. ",
			"Ugh, that must be really tough. Let me try to help: ",
		},
	},
	{
		terms: []string{"anxious", "anxiety", "worried", "stress", "overwhelm"},
		pool: []string{
			"Anxiety is exhausting, I get it. 💚 ",
			"That overwhelm is real. Let's tackle this together: ",
			"I hear you. That anxiety must be draining. Here's what might help: ",
		},
	},
	{
		terms: []string{"angry", "mad", "frustrated", "pissed"},
		pool: []string{
			"I totally hear that frustration. ",
			"It's okay to be angry. That's valid. ",
			"Sounds frustrating for real. ",
		},
	},
}

// neutralOpeners apply when no affect keyword matches; the empty string
// means the answer may open unadorned.
var neutralOpeners = []string{"", "I hear you. ", "Okay so, "}

// softeners are applied in order as literal substring rewrites; order
// matters because later rewrites build on earlier ones.
var softeners = []struct{ from, to string }{
	{"It is important", "It's important"},
	{"It's important to", "You should definitely"},
	{"individuals", "people"},
	{"We encourage", "I'd suggest"},
	{"consider seeking", "talk to"},
}

var encouragements = []string{
	" You've got this! 💪",
	" I believe in you!",
	" One step at a time, okay?",
	" You're stronger than you think! ✨",
}

// fallbackRules classify unmatched input for the empathetic fallback path,
// checked in order: feelings, help requests, fatigue.
var fallbackRules = []rule{
	{
		terms: []string{"feel", "feeling"},
		pool: []string{
			"I hear you. Your feelings are totally valid. Want to tell me more about what's going on? 💙",
			"Thanks for sharing how you're feeling with me. That takes courage. Tell me more?",
			"I'm here to listen. What's been making you feel this way?",
		},
	},
	{
		terms: []string{"help", "what should", "what can", "how do i"},
		pool: []string{
			"I want to help! Can you tell me a bit more about what's going on? Then I can give better advice. 😊",
			"Let's figure this out together. What's the main thing you're struggling with?",
			"I'm here for you! Give me some more details about your situation?",
		},
	},
	{
		terms: []string{"tired", "exhausted", "drained"},
		pool: []string{
			"Being tired all the time is really hard. You deserve rest. What's been draining your energy?",
			"Exhaustion is real. It sounds like you need some serious rest. Tell me more?",
			"I hear that fatigue. Your body might be telling you something. Want to talk about it?",
		},
	},
}

var listeningReplies = []string{
	"I'm here to listen, friend. Want to tell me more about what's on your mind? 💙",
	"I'm all ears! What's been going on with you?",
	"Thanks for opening up. I want to understand better - can you share more?",
	"I'm here for you. What's been weighing on you lately?",
}

var farewells = []string{
	"Take care of yourself, okay? I'm always here if you need me. 💙",
	"Bye friend! Remember - you're doing better than you think. Be kind to yourself! 💚",
	"See you later! Don't hesitate to come back anytime. You matter! 💜",
	"Take care! You're stronger than you know. I'm here whenever you need. ✨",
	"Bye! Remember to be gentle with yourself. You've got this! 💪💙",
}

// emptyPrompt answers turns with no usable content after normalization.
const emptyPrompt = "I'm listening! Tell me more - what's going on? 💙"

// DefaultHotlines are the lines rendered into the crisis reply. US-centric
// defaults; deployments elsewhere should configure locale-appropriate
// services.
var DefaultHotlines = []string{
	"📞 **Call 988** - Suicide & Crisis Lifeline (free, 24/7, confidential)",
	"💬 **Text HELLO to 741741** - Crisis Text Line (if calling feels hard)",
	"🏥 **Go to the ER** if you're in immediate danger",
}
