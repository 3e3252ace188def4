package notify

import "fmt"

// UploadSummary carries the figures reported to the uploader once an upload
// finishes processing.
type UploadSummary struct {
	UploadID     string
	Filename     string
	TotalRecords int
	ValidRecords int
}

func (s UploadSummary) InvalidRecords() int {
	return s.TotalRecords - s.ValidRecords
}

// UploadProcessedSubject is the subject line for the completion email.
const UploadProcessedSubject = "Elector Upload Processed Successfully"

// RenderUploadProcessed renders the HTML body for the completion email.
func RenderUploadProcessed(s UploadSummary) string {
	return fmt.Sprintf(`
<html>
    <body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
        <h2>Elector Upload Processed Successfully</h2>
        <p>Your elector upload has been processed successfully. Here are the details:</p>
        <ul>
            <li><strong>Upload ID:</strong> %s</li>
            <li><strong>File Name:</strong> %s</li>
            <li><strong>Total Records:</strong> %d</li>
            <li><strong>Valid Records Processed:</strong> %d</li>
            <li><strong>Invalid Records:</strong> %d</li>
        </ul>
        <p>If you have any questions or concerns, please contact our support team.</p>
        <p>Thank you for using our service!</p>
    </body>
</html>`,
		s.UploadID, s.Filename, s.TotalRecords, s.ValidRecords, s.InvalidRecords())
}
