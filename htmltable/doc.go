// Package htmltable renders a styled model.Table as a self-contained HTML
// table fragment and reads such fragments back.
//
// The fragment has this shape:
//
//	<table>
//	  <thead><tr><th scope="col">Name</th>...</tr></thead>
//	  <tbody>
//	    <tr><th scope="row">Alpha</th><td style="text-align: right; background-color: rgb(0, 0, 0);">10</td>...</tr>
//	  </tbody>
//	</table>
//
// (whitespace added for readability; the serialized form has none). All
// presentation is inlined so the markup can be pasted anywhere. The tree is
// built from golang.org/x/net/html nodes and serialized with html.Render,
// which escapes text and attribute values and emits attributes in the order
// they were added, so identical tables serialize to identical bytes.
package htmltable
