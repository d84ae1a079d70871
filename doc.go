/*
Package novice provides a simple picture manipulation interface for
beginners. It allows for easy loading, manipulating, and saving of
image files.

NOTE: This package uses the Cartesian coordinate system! The origin is
the bottom-left corner of the picture and y grows upward.

Pictures know their format, where they came from and their size, and
they track whether their pixels have been changed since they were
loaded or saved. Pixels are live aliases into their picture: writing a
channel writes straight into the picture's buffer.

Basic usage:

	picture, err := novice.Open("sample.png")
	if err != nil {
	    log.Fatal(err)
	}

	fmt.Println(picture.Format())  // "png"
	fmt.Println(picture.Path())    // "/home/example/sample.png"
	fmt.Println(picture.Size())    // 665 500

	// Changing the size automatically resizes the picture.
	picture.SetSize(200, 250)

	// Iterate over pixels; they know where they are.
	for px := range picture.Pixels() {
	    if px.Red() > 128 && px.X() < picture.Width()/2 {
	        px.SetRed(px.Red() / 2)
	    }
	}

	fmt.Println(picture.Modified()) // true
	fmt.Println(picture.Path())     // "" - no longer corresponds to a file

	// Overwrite the lower-left rectangle with black.
	picture.Fill(0, 0, 20, 20, novice.Color{})

	// The file type is guessed from the suffix.
	picture.Save("sample-dark.jpg")
	fmt.Println(picture.Format())   // "jpeg"
	fmt.Println(picture.Modified()) // false

Decoding supports PNG, JPEG, GIF, BMP, TIFF and WebP; saving supports
PNG, JPEG, GIF, BMP and TIFF. Pictures can also be previewed directly
in the terminal with Show, using sixel or iTerm2 graphics where
available and Unicode halfblocks everywhere else.
*/
package novice
