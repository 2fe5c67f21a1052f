package gamification

// QuizQuestion is one multiple-choice quiz question. Correct indexes into
// Options.
type QuizQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Correct  int      `json:"correct"`
}

var quizBank = map[string]map[string][]QuizQuestion{
	"AI": {
		"easy": {
			{Question: "What does AI stand for?", Options: []string{"Artificial Intelligence", "Automated Information", "Advanced Integration"}, Correct: 0},
			{Question: "Which is a popular AI programming language?", Options: []string{"Python", "HTML", "CSS"}, Correct: 0},
		},
		"medium": {
			{Question: "What is machine learning?", Options: []string{"A subset of AI", "A type of computer", "A programming language"}, Correct: 0},
			{Question: "What is neural network inspired by?", Options: []string{"Human brain", "Computer circuits", "Internet"}, Correct: 0},
		},
		"hard": {
			{Question: "What is the vanishing gradient problem?", Options: []string{"Gradients become too small", "Gradients become too large", "No gradients"}, Correct: 0},
		},
	},
	"SaaS": {
		"easy": {
			{Question: "What does SaaS stand for?", Options: []string{"Software as a Service", "System as a Service", "Security as a Service"}, Correct: 0},
		},
		"medium": {
			{Question: "What is a key benefit of SaaS?", Options: []string{"Scalability", "Hardware ownership", "Local storage"}, Correct: 0},
		},
	},
}

// QuizQuestions returns the quiz for a topic and difficulty. Unknown topics
// fall back to AI; unknown difficulties to medium.
func QuizQuestions(topic, difficulty string) []QuizQuestion {
	byDifficulty, ok := quizBank[topic]
	if !ok {
		byDifficulty = quizBank["AI"]
	}
	questions, ok := byDifficulty[difficulty]
	if !ok {
		questions = byDifficulty["medium"]
	}
	return questions
}
