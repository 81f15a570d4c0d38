package token

// boundary returns the length of the longest prefix of data that is
// safe to tokenize: one that does not end inside an unterminated tag,
// comment, or quoted attribute value. The withheld suffix starts at
// the '<' of the open construct.
//
// The scan is deliberately conservative: a bare '<' followed by text
// and no '>' is withheld even though a tokenizer would eventually
// treat it as text, matching the one-shot API's trailing-fragment
// rule.
func boundary(data []byte) int {
	const (
		stData = iota
		stTag
		stDouble   // inside "..." attribute value
		stSingle   // inside '...' attribute value
		stBang     // seen <!
		stBangDash // seen <!-
		stMarkup   // <!doctype and friends, until >
		stComment  // <!-- ... -->
	)
	st := stData
	open := 0 // index of the '<' we may be inside
	dash := 0 // trailing '-' run inside a comment
	for i := 0; i < len(data); i++ {
		c := data[i]
		switch st {
		case stData:
			if c == '<' {
				st = stTag
				open = i
			}
		case stTag:
			switch c {
			case '>':
				st = stData
			case '"':
				st = stDouble
			case '\'':
				st = stSingle
			case '!':
				if i == open+1 {
					st = stBang
				}
			}
		case stDouble:
			if c == '"' {
				st = stTag
			}
		case stSingle:
			if c == '\'' {
				st = stTag
			}
		case stBang:
			switch c {
			case '-':
				st = stBangDash
			case '>':
				st = stData
			default:
				st = stMarkup
			}
		case stBangDash:
			switch c {
			case '-':
				st = stComment
				dash = 0
			case '>':
				st = stData
			default:
				st = stMarkup
			}
		case stMarkup:
			if c == '>' {
				st = stData
			}
		case stComment:
			switch {
			case c == '-':
				dash++
			case c == '>' && dash >= 2:
				st = stData
				dash = 0
			default:
				dash = 0
			}
		}
	}
	if st == stData {
		return len(data)
	}
	return open
}
