package intake

import "fmt"

// Replies sent back to the sender. None of them carries internal detail.
const (
	ReplyDuplicate         = "Already received—processing was skipped"
	ReplyMediaTooLarge     = "That voice note is too large to process. Please send a shorter one."
	ReplyUnsupportedMedia  = "Sorry, I can only process voice notes and text messages."
	ReplyMediaUnavailable  = "Sorry, I couldn't download that voice note. Please try again."
	ReplyTranscriptionFail = "Sorry, I couldn't understand that voice note. Please try again or send a text message."
	ReplyEmpty             = "I didn't catch a task in that message. Please describe it in a voice note or text."
	ReplyUncategorized     = "Task created. Please categorize it manually in the app."
	ReplyError             = "Sorry, something went wrong. Please try again later."
)

func replyCreated(categoryName string) string {
	return fmt.Sprintf("Task created under %s.", categoryName)
}
