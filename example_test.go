package cleanhtml_test

import (
	"fmt"

	"github.com/njchilds90/cleanhtml"
)

func ExampleSanitize() {
	input := `<b>Hello</b> <script>alert('xss')</script>`
	clean := cleanhtml.Sanitize(input, cleanhtml.DefaultPolicy())
	fmt.Println(clean)
	// Output: <b>Hello</b>
}

func ExampleStripTags() {
	input := `<p>Hello <b>world</b></p>`
	text, _ := cleanhtml.StripTags(input)
	fmt.Println(text)
	// Output: Hello world
}

func ExampleSanitize_customPolicy() {
	p := &cleanhtml.Policy{
		Tags:       []string{"b", "i"},
		Attributes: []string{},
	}
	input := `<b>bold</b> <div>stripped</div>`
	clean := cleanhtml.Sanitize(input, p)
	fmt.Println(clean)
	// Output: <b>bold</b>
}

func ExampleConfig_Policy() {
	c := &cleanhtml.Config{AdditionalTags: []string{"video"}}
	input := `<video src="movie.mp4"></video>`
	clean := cleanhtml.Sanitize(input, c.Policy())
	fmt.Println(clean)
	// Output: <video src="movie.mp4"></video>
}
