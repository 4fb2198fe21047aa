package matcher_test

import (
	"fmt"

	"github.com/jmgilman/dappreg/matcher"
)

func ExampleProcessError() {
	table := matcher.Table{
		matcher.DefaultKey: {
			{Matcher: "/Insufficient balance/", Message: "You do not have enough funds"},
		},
		"swap": {
			{
				Matcher: "/Insufficient balance/",
				Message: "Not enough {{1}} to swap",
				Extractors: []matcher.Extractor{
					{Matcher: `/token: (0x[0-9a-f]+)/`},
				},
			},
		},
	}

	raw := "Error message: Insufficient balance\ntoken: 0x455448\n"

	msg, _, _ := matcher.ProcessError(raw, table, "swap")
	fmt.Println(msg)

	msg, _, _ = matcher.ProcessError(raw, table)
	fmt.Println(msg)
	// Output:
	// Not enough ETH to swap
	// You do not have enough funds
}
