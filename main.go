// SPDX-License-Identifier: GPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"os/user"

	"ysen/repl"
)

func main() {
	currentUser, err := user.Current()
	if err != nil {
		fmt.Printf("Error getting current user: %v\n", err)
		return
	}

	fmt.Printf("Welcome to the ysen lexer REPL, %s!\n", currentUser.Username)
	fmt.Println("Type :comments or :whitespace to toggle trivia tokens.")
	repl.Start(os.Stdin, os.Stdout)
}
