package picture

type (
	Picture struct {
		ID       string
		Data     []byte
		Filetype string
	}
)
