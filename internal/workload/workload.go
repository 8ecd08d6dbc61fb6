// Package workload defines the Ray client workload the compatibility
// test runs inside the throwaway container, and the output it must
// produce.
package workload

import "fmt"

// ExpectedOutput is the byte-exact stdout of the client workload:
// squares of 0 through 3 in submission order, plus the trailing newline.
// Any deviation, including whitespace, fails the test.
const ExpectedOutput = "[0, 1, 4, 9]\n"

// script submits four remote invocations of a pure function and prints
// the collected results.
const script = `
import ray
ray.init(address='%s')

@ray.remote
def f(x):
    return x * x

futures = [f.remote(i) for i in range(4)]
print(ray.get(futures))
`

// Script returns the Python client program, pointed at address.
func Script(address string) string {
	return fmt.Sprintf(script, address)
}

// Command returns the argv exec'd inside the container.
func Command(address string) []string {
	return []string{"python", "-c", Script(address)}
}
