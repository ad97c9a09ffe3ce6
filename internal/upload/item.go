package upload

type Status string

const (
	StatusIdle      Status = "idle"
	StatusUploading Status = "uploading"
	StatusSuccess   Status = "success"
	StatusError     Status = "error"
)

func (s Status) Terminal() bool {
	return s == StatusSuccess || s == StatusError
}

// Item is one file's journey through the pipeline. AttachmentID is set
// only when Status is StatusSuccess. Progress moves only while uploading.
type Item struct {
	File         File
	Progress     int
	Status       Status
	AttachmentID string
	// Err holds the stage error of a failed item.
	Err error

	gen uint64
}

func newItem(f File) Item {
	return Item{File: f, Status: StatusIdle}
}

func (it *Item) begin() bool {
	if it.Status != StatusIdle {
		return false
	}
	it.Status = StatusUploading
	it.Progress = 0
	return true
}

func (it *Item) advance(percent int) bool {
	if it.Status != StatusUploading || percent <= it.Progress {
		return false
	}
	if percent > 100 {
		percent = 100
	}
	it.Progress = percent
	return true
}

func (it *Item) succeed(attachmentID string) bool {
	if it.Status != StatusUploading {
		return false
	}
	it.Status = StatusSuccess
	it.Progress = 100
	it.AttachmentID = attachmentID
	return true
}

func (it *Item) fail(err error) bool {
	if it.Status.Terminal() {
		return false
	}
	it.Status = StatusError
	it.AttachmentID = ""
	it.Err = err
	return true
}
