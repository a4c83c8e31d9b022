// Package chart knows the layout of a chart directory and assembles the
// multimodal generation request for it.
//
// A chart directory holds the input track (track.mp3) and receives the
// generated chart (maidata.txt). The request sent to the model is always the
// embedded instructional prompt, then a reference song, then the track.
package chart
