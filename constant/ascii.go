package constant

import _ "embed"

// Logo is printed above the root command's help.
//
//go:embed ascii.txt
var Logo string
