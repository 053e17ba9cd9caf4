package storage

import "fmt"

// CVPath is the single well-known location of the CV document.
const CVPath = "cv/cv.pdf"

// ProjectImagePath returns the object path for a project image. Paths are
// keyed by the persisted project ID, so images are uploaded after the
// project document exists.
func ProjectImagePath(projectID, filename string) string {
	return fmt.Sprintf("projects/%s/%s", projectID, filename)
}
