package grid

import "github.com/dkoosis/nbview/pkg/htmlcode"

// HTML renders the snapshot as a table element.
func (s *Snapshot) HTML(nullText string) (string, error) {
	return htmlcode.Create(func(d *htmlcode.Document) {
		d.NewElement("table", func(table *htmlcode.Element) {
			table.Attr("class", "nbview-grid")
			table.NewElement("thead", func(thead *htmlcode.Element) {
				thead.NewElement("tr", func(tr *htmlcode.Element) {
					for _, c := range s.Columns {
						tr.NewElement("th", func(th *htmlcode.Element) { th.Text(c) })
					}
				})
			})
			table.NewElement("tbody", func(tbody *htmlcode.Element) {
				for r := range s.Values {
					tbody.NewElement("tr", func(tr *htmlcode.Element) {
						for c := range s.Columns {
							tr.NewElement("td", func(td *htmlcode.Element) {
								text, ok := s.Cell(r, c)
								if !ok {
									td.Attr("class", "null")
									text = nullText
								}
								if text != "" {
									td.Text(text)
								}
							})
						}
					})
				}
			})
		})
	})
}
