package httpapi

// credentials are the query parameters every authenticated route carries for
// compatibility with the demo clients. The auth middleware consumes them (or
// a bearer token instead); they are declared on inputs so they show up in
// the OpenAPI description.
type credentials struct {
	UserID   string `query:"userId" doc:"Requesting user id"`
	Password string `query:"password" doc:"Requesting user password"`
}

type signupInput struct {
	UserID   string `query:"userId" doc:"New user id"`
	Password string `query:"password" doc:"New user password"`
}

type authInput struct {
	credentials
}

type putDataInput struct {
	credentials
	RawBody []byte `doc:"Note content, stored verbatim"`
}

type getDataInput struct {
	credentials
	TargetID string `path:"userId" doc:"User whose note to fetch"`
}

type shareInput struct {
	credentials
	Body shareRequest
}

type shareRequest struct {
	From string   `json:"from" doc:"Owner of the shared note"`
	To   []string `json:"to" doc:"Users granted read access"`
}

// textOutput serves tokens and note contents verbatim.
type textOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

func plainText(s string) *textOutput {
	return &textOutput{ContentType: "text/plain", Body: []byte(s)}
}

type emptyOutput struct{}

type usersOutput struct {
	Body []string
}

type meOutput struct {
	Body meResponse
}

// meResponse deliberately excludes the password hash and token.
type meResponse struct {
	ID              string   `json:"id"`
	NoteRecipients  []string `json:"noteRecipients"`
	AccessibleNotes []string `json:"accessibleNotes"`
}

type healthOutput struct {
	Body healthResponse
}

type healthResponse struct {
	Status string `json:"status"`
}
