package survey

// Questions is the fixed ordered survey served by the API. Question IDs are
// stable identifiers referenced by submissions.
var Questions = []Question{
	{ID: "q1", Text: "Describe a recent problem you enjoyed solving. What made it satisfying?"},
	{ID: "q2", Text: "When you start something new, do you prefer a detailed plan or to figure it out as you go?"},
	{ID: "q3", Text: "What kind of activities make you lose track of time?"},
	{ID: "q4", Text: "Do you recharge more by spending time with people or by spending time alone?"},
	{ID: "q5", Text: "When a group project stalls, what role do you naturally take?"},
	{ID: "q6", Text: "Would you rather build something with your hands, analyze data, or tell a story? Why?"},
	{ID: "q7", Text: "How do you react when the rules of a task are ambiguous?"},
	{ID: "q8", Text: "What achievement are you most proud of, and what did it take to get there?"},
	{ID: "q9", Text: "If money were no concern, how would you spend a typical week?"},
	{ID: "q10", Text: "What do friends or colleagues most often ask for your help with?"},
}

// QuestionByID returns the question with the given ID, if it exists.
func QuestionByID(id string) (Question, bool) {
	for _, q := range Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
