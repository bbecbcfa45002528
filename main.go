// SPDX-License-Identifier: MPL-2.0

package main

import cmd "coqc-cli/cmd/coqc"

func main() {
	cmd.Execute()
}
