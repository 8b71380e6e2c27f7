package debug

import (
	"fmt"
	"os"
	"strconv"

	"github.com/goccy/go-json"
)

type debug struct {
	Walk   bool
	Repair bool
}

var d *debug

func init() {
	d = &debug{}
	d.Walk = boolEnv("CHARFIX_DEBUG_WALK")
	d.Repair = boolEnv("CHARFIX_DEBUG_REPAIR")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Walk() bool {
	return d.Walk
}
func Repair() bool {
	return d.Repair
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
	os.Stderr.Write([]byte("\n"))
}
