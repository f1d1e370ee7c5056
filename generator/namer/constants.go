package namer

const (
	// PathTestResultsPadded matches test results at any depth below the checkout.
	PathTestResultsPadded = "**/test-results/**"
	// PathUnityRevision is the file holding the editor revision to download.
	PathUnityRevision = "unity_revision.txt"
)
