// Copyright 2023 uhppoted@twyst.co.za. All rights reserved.
// Use of this source code is governed by an MIT-style license
// that can be found in the LICENSE file.

/*
Package uhppoted-sheets is a thin client for reading and updating Google Sheets spreadsheets.

The address package converts between column numbers, column letters and A1-style cell addresses
and the spreadsheet package wraps the Google Sheets v4 API as a small set of read, write, append,
rename, create and format operations.

uhppoted-sheets can also be used from the command line and supports the following commands:

  - authorise, to authorise application access to Google Sheets using OAuth2 client credentials
  - get, to download a Google Sheets range as a TSV or XLSX file
  - put, to store a TSV file to a Google Sheets range
  - append, to append the rows in a TSV file to a Google Sheets range
  - write-row, write-column, to write a list of values across a row or down a column
  - clear, to clear the values from Google Sheets ranges
  - rename-sheet, create-sheet, lookup, to manage worksheets
  - format-cell, to set the background colour of a cell
  - revision, to display the latest Google Drive revision of a spreadsheet
*/
package sheets
