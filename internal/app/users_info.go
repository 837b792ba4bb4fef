package app

import (
	"net/http"
	"os"
)

const usersInfoFile = "users_info.txt"

const usersInfoContent = `CINEMA BOOKING SYSTEM - USER CREDENTIALS
=====================================

Regular Users:
1. Username: user1, Password: password123
2. Username: user2, Password: Pass22
3. Username: user3, Password: Pass33
4. Username: user4, Password: Pass44

Administrator:
Username: admin, Password: @dM!N

Note: This file is accessible via URL, demonstrating path traversal vulnerability.
`

// WriteUsersInfoFile drops the plaintext credential sheet into the working
// directory. The file is reachable over HTTP on purpose: it demonstrates the
// path disclosure flaw.
func WriteUsersInfoFile() error {
	return os.WriteFile(usersInfoFile, []byte(usersInfoContent), 0o644)
}

func (app *Application) UsersInfo(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, usersInfoFile)
}
