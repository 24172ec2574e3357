/*
Package accountsdk provides a client SDK for the dotes account service.

# Client vs Session

  - Client: unauthenticated operations (login, anonymous registration,
    health probes) and the entry point for creating a Session.
  - Session: operations that carry an access token in the X-Access-Token
    header.

	client := accountsdk.NewClient("http://localhost:8080")

	// Create a brand-new workspace; the first user becomes its admin
	admin, err := client.Register(ctx, accountsdk.RegisterRequest{
		Email:          "founder@example.com",
		Password:       "correct-horse-battery",
		RepeatPassword: "correct-horse-battery",
		FullName:       "Founder",
		Workspace:      "acme",
	})

	// Log in to obtain a session
	session, err := client.Login(ctx, "founder@example.com", "correct-horse-battery")

	// Admins add members to their own workspace
	member, err := session.Register(ctx, accountsdk.RegisterRequest{...})

	// Everyone can read their profile and the workspace roster
	me, err := session.Profile(ctx)
	users, err := session.ListUsers(ctx)

# Tokens

Access tokens live for 30 minutes and cannot be refreshed. A Session does
not log in again on its own; once Expired reports true, call Client.Login.

# Error Handling

Every non-success response is returned as *APIError carrying the HTTP
status code and the server's message:

	_, err := session.DeleteUser(ctx, "someone@else.example")
	var apiErr *accountsdk.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusForbidden {
		// not an admin, or the user lives in another workspace
	}

# Thread Safety

Client and Session are safe for concurrent use.
*/
package accountsdk
