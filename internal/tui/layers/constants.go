package layers

const (
	// ModalMinWidth and ModalMaxWidth bound the width of modal dialogs
	ModalMinWidth = 40
	ModalMaxWidth = 72

	// ModalWidthDivisor sizes a modal to 1/2 of the screen width
	ModalWidthDivisor = 2

	// ModalBorderPaddingWidth is left + right border and padding
	ModalBorderPaddingWidth = 6
	// ModalBorderPaddingHeight is top + bottom border and padding
	ModalBorderPaddingHeight = 4

	// DetailMaxHeightNumerator / DetailMaxHeightDivisor of the screen height
	// is the tallest a task detail modal gets
	DetailMaxHeightNumerator = 3
	DetailMaxHeightDivisor   = 4
)

// ModalWidth sizes a modal for the screen, clamped to the modal bounds
func ModalWidth(screenWidth int) int {
	return min(max(screenWidth/ModalWidthDivisor, ModalMinWidth), ModalMaxWidth)
}

// DetailHeight is the viewport height for a task detail modal
func DetailHeight(screenHeight int) int {
	return max(screenHeight*DetailMaxHeightNumerator/DetailMaxHeightDivisor-ModalBorderPaddingHeight-4, 3)
}
