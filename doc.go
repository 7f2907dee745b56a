// Package linepara reconstructs lines and paragraphs from the flat stream of
// positioned glyphs a page decoder produces.
//
// Basic usage:
//
//	h, err := linepara.NewHandler("statistical")
//	if err != nil {
//	    // handle error
//	}
//	for _, page := range decodedPages {
//	    h.NextPage(page.Width, page.Height)
//	    for _, run := range page.Runs {
//	        h.AddPositions(run)
//	    }
//	    h.EndPage(page.Width, page.Height)
//	}
//	doc := h.(linepara.DocumentHandler).Document()
//	fmt.Println(doc.ExtractText())
//
// With options:
//
//	h, err := linepara.NewParagraphHandler("adaptive",
//	    linepara.WithLogger(logger),
//	    linepara.WithConfig(cfg),
//	)
//
// Three handler variants exist. ParagraphHandler relies on geometry alone,
// LineMergingHandler follows the decoder's paragraph hints and repairs them,
// and CharacterHandler keeps raw glyphs per page. The stream package replays
// recorded decoder events into any of them.
package linepara
