package dom

import "golang.org/x/net/html"

// Walk visits n and its descendants in document order until visit returns
// false.
func Walk(n *html.Node, visit func(*html.Node) bool) bool {
	if n == nil {
		return true
	}
	if !visit(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !Walk(c, visit) {
			return false
		}
	}
	return true
}

// ByID returns the first element under root whose id equals id.
func ByID(root *html.Node, id string) *html.Node {
	var found *html.Node
	Walk(root, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return true
		}
		if v, ok := Attr(n, "id"); ok && v == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// QueryClass returns every element under root, excluding root itself, whose
// class list contains class, in document order.
func QueryClass(root *html.Node, class string) []*html.Node {
	if root == nil {
		return nil
	}
	var out []*html.Node
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		Walk(c, func(n *html.Node) bool {
			if HasClass(n, class) {
				out = append(out, n)
			}
			return true
		})
	}
	return out
}

// FirstClass returns the first element under root with class, or nil.
func FirstClass(root *html.Node, class string) *html.Node {
	if root == nil {
		return nil
	}
	var found *html.Node
	for c := root.FirstChild; c != nil && found == nil; c = c.NextSibling {
		Walk(c, func(n *html.Node) bool {
			if HasClass(n, class) {
				found = n
				return false
			}
			return true
		})
	}
	return found
}
