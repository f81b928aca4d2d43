package boom

import "os"

var readFile = os.ReadFile
