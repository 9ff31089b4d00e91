package chat

// Canned bot replies. The decision logic is pure substring matching; there
// is no NLP here and there is not meant to be.
const (
	replyLoanOptions = "We offer Business, Personal and MSME loans. Would you like to start an application?"

	replyDocumentChecklist = "For most loans you'll need PAN, Aadhaar, bank statement and income proof."

	replyNoOpenTickets = "You have no open tickets at the moment."

	replyFallback = "I'm here to assist with loans, documents, or application status. Please type your query."
)
